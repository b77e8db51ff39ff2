// Package commands implements the intcalc command line. It drives the same
// equation buffer as the graphical calculator, with key presses taken from
// arguments or standard input.
package commands
