// Package vm implements the assembler and virtual machine for a small
// assembly-like language.
//
// The assembler converts source text, one instruction per line, into a
// Program: an ordered instruction sequence plus a table resolving jump
// labels to instruction indexes. A Machine executes a Program against a
// register bank, a call stack, and two comparison flags, producing the
// string written by the last msg instruction before end was reached.
package vm
