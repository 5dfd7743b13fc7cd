// Package autotoc runs the generation pipeline: collect the documentation
// paths, group them into a route table, write one navigator per folder and the
// entry page, then link autosummary placeholders.
//
// A run always regenerates every output from scratch. Stages run in order on
// the calling goroutine and the context is checked between them.
package autotoc
