// Package anim holds the animation state of the circle shifter chain.
//
// A Chain is a fixed row of nodes with a cursor. Tapping starts a transition
// on the node under the cursor; each frame the Driver fires, the node's
// scale moves by an Updater step until it has travelled a full unit, at
// which point it settles and the cursor moves to the neighbouring node.
// At either end of the chain the cursor stays put and the direction of
// travel flips, so repeated taps walk the chain back and forth.
//
// Nothing in this package draws or blocks; hosts feed it frame time and
// read node scales back out.
package anim
