// Package anchors finds region anchors in a package: SSA blocks that must be covered by
// the region of some named group.
//
// There are two sources of anchors:
//
//   - Calls of known functions and methods. These are configured as references like
//     "sync".Mutex.Lock and grouped under a name.
//   - Source directives. A comment
//
//     //seme:anchor <group>
//
//     either on its own line right before a statement or trailing on the first line of a
//     statement marks every instruction of that statement as an anchor of the group.
//
// Directive statement spans are kept in an [Index]: spans never overlap partially, so they
// form a tree where the innermost span covering a position wins.
package anchors
