// Package datapath implements the 8-bit single-bus accumulator datapath and
// its assembler.
//
// The datapath has six 8-bit registers: the accumulator A, which is both the
// operand and the destination of the add/subtract unit, and the general
// registers B through F. All transfers go through one shared bus. Each cycle
// an externally supplied instruction word selects the single source that
// drives the bus and the single destination that captures it.
//
// Registers are re-latched on every clock edge. A register that is not being
// loaded is fed its own value, so every edge is an unconditional write.
//
// The assembler provides a small line-oriented language, one instruction per
// clock cycle, with equates, macros, and compile-time expression evaluation.
package datapath
