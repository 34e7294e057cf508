// Package game is the falling-block state machine.
//
// A Game owns one State: the board, the active and next piece, score, level
// and the paused and over flags. Time advances only through Tick. Each tick
// the Scheduler runs its systems in order over a Frame:
//
//  1. SpawnSystem places the next piece, or ends the game when it collides.
//  2. InputSystem applies queued Commands in arrival order.
//  3. GravitySystem moves the piece down once the fall interval has elapsed.
//  4. LockSystem commits a landed piece, clears full rows and scores them.
//
// Events emitted during a tick are delivered to the Listener after the last
// system has run, followed by any deferred functions such as saving the high
// score. Callers may append their own systems with Game.Register.
package game
