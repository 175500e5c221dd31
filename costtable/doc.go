// Package costtable stores the boundary-cost table M the optimal-leaf-
// ordering DP engine (package olo) fills and reconstructs from: one
// rectangular Block per internal node, addressed by local position within
// that node's left/right leaf sets rather than by global leaf index.
package costtable
