// Package sim provides the round-robin scheduling engine for rrsched.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - pcb.go: process control block and its lifecycle (ready → running → blocked/terminated)
//   - instruction.go: the four-opcode program language, parsed once at load time
//   - scheduler.go: the slice loop that interprets instructions and moves PCBs between queues
//
// # Architecture
//
// The engine owns three structures, all passed explicitly through the Scheduler:
//   - ProcessTable: the live PCB set plus the switch/instruction counters
//   - ReadyQueue: FIFO of runnable PCBs
//   - BlockedQueue: FIFO of PCBs waiting out a simulated I/O delay
//
// Collaborators live in sub-packages:
//   - sim/workload/: loads program definitions (directory layout or YAML bundle)
//   - sim/trace/: trace events, sinks, and log-line rendering
//   - sim/history/: persisted run history and its HTTP view
//
// The simulation is single-threaded and deterministic: identical inputs produce
// identical trace sequences.
package sim
