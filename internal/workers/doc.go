// Package workers runs independent tasks with bounded concurrency.
//
// Tasks are admitted in consecutive groups of a fixed size. Every task of a
// group runs in its own goroutine, and the next group starts only after the
// whole group has finished, so no more than the group size is ever in
// flight. Results are returned in task order regardless of completion order.
package workers
