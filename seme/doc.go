// Package seme maintains single entry, multiple exit (SEME) regions over a flow graph.
//
// A region is written as {H, Ts}, where H is the head and Ts is a set of tails. The head
// dominates every tail. A point P belongs to the region when
//
//   - H dominates P, and
//   - P dominates at least one tail T.
//
// In other words P lies between the head and some tail on the dominator tree.
//
// Regions are also continuous: every member N other than H has all of its flow-graph
// predecessors inside the region, so control can enter the region only through H. This is
// what makes a region a legal subject for code motion or outlining.
//
// The package does not build dominator trees. Callers supply them through the [Graph]
// capability on every call. A region never keeps the graph, and the graph must stay
// unchanged for as long as regions built over it are in use.
//
// Regions only grow. To drop points, build a new region.
package seme
