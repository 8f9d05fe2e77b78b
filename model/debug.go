package model

// DebugSink receives debug text; *log.Logger satisfies it
type DebugSink interface {
	Printf(format string, args ...any)
}

// Debug writes the serialized board followed by its turn to sink. A nil sink is ignored.
func Debug(g *Grid, sink DebugSink) {
	if sink == nil {
		return
	}
	sink.Printf("%s", g.String())
	sink.Printf("turn %d", g.turn)
}
