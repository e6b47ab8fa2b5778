package main

// tickBatch advances the lamps steps frames. Every frame clears and redraws
// the offscreen canvas, so only the last one is presented, and only if
// at least one frame was drawn.
func (g *Game) tickBatch(steps int) error {
	for i := 0; i < steps; i++ {
		if err := g.driver.Tick(g.canvas); err != nil {
			return err
		}
		g.frameDirty = true
	}
	return nil
}
