// Package distmat provides the read-only, symmetric, zero-diagonal
// distance oracle over leaf indices that package olo consults while filling
// its boundary-cost table.
//
//	d, err := distmat.NewDense(flatRowMajor, n)
//	// or: d, err := distmat.NewCondensed(upperTriangle, n)
//	if err := distmat.Validate(d); err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := d.At(2, 5)
package distmat
