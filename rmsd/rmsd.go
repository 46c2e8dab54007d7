/*
Package rmsd computes the optimal superposition of two equally sized sets
of atom coordinates with the Kabsch algorithm, described in detail here:
http://cnx.org/content/m11608/latest/

A brief, high-level overview:

Build the 3xN matrices X and Y containing, for the sets x and y
respectively, the coordinates for each of the N atoms after centering
the atoms by subtracting the centroids.

Compute the covariance matrix C=X(Y^T)

Compute the SVD (Singular Value Decomposition) of C=USV^T

Compute d=sign(det(C))

Compute the optimal rotation R as R = V ([1 0 0] [0 1 0] [0 0 d]) U^T
*/
package rmsd

import (
	"fmt"
	"math"

	matrix "github.com/skelterjohn/go.matrix"

	"github.com/sefgit/biotite/pdb"
)

// RMSD returns the root mean square deviation of the two coordinate sets
// after optimal superposition.
//
// RMSD panics if the lengths of cs1 and cs2 differ, or if the SVD of the
// covariance matrix cannot be computed.
func RMSD(cs1, cs2 []pdb.Coords) float64 {
	rotated := Superimpose(cs1, cs2)
	var sum float64
	for i, c := range rotated {
		dx := c.X - cs2[i].X
		dy := c.Y - cs2[i].Y
		dz := c.Z - cs2[i].Z
		sum += dx*dx + dy*dy + dz*dz
	}
	return math.Sqrt(sum / float64(len(cs1)))
}

// Superimpose rotates and translates mobile so that it is optimally
// superimposed onto target, and returns the transformed copy. The two sets
// must have equal lengths.
func Superimpose(mobile, target []pdb.Coords) []pdb.Coords {
	if len(mobile) != len(target) {
		panic(fmt.Sprintf("superimposing two structures requires that "+
			"they have equal length, but their lengths are %d and %d",
			len(mobile), len(target)))
	}

	cm := centroid(mobile)
	ct := centroid(target)

	// Build the centered 3xN coordinate matrices.
	cols := len(mobile)
	xs := make([]float64, 3*cols)
	ys := make([]float64, 3*cols)
	for i := 0; i < cols; i++ {
		xs[0*cols+i] = mobile[i].X - cm.X
		xs[1*cols+i] = mobile[i].Y - cm.Y
		xs[2*cols+i] = mobile[i].Z - cm.Z

		ys[0*cols+i] = target[i].X - ct.X
		ys[1*cols+i] = target[i].Y - ct.Y
		ys[2*cols+i] = target[i].Z - ct.Z
	}
	X := matrix.MakeDenseMatrix(xs, 3, cols)
	Y := matrix.MakeDenseMatrix(ys, 3, cols)

	// Covariance matrix C = X(Y^T), then its SVD.
	C := must(X.TimesDense(Y.Transpose()))
	U, _, V, err := C.SVD()
	if err != nil {
		panic(err)
	}

	// A negative determinant means the optimal transform found so far is an
	// improper rotation (a reflection). Flipping the sign of the smallest
	// singular direction makes it proper.
	D := matrix.Diagonal([]float64{1, 1, 1})
	if C.Det() < 0 {
		D.Set(2, 2, -1)
	}
	R := must(must(V.TimesDense(D)).TimesDense(U.Transpose()))

	// Apply the rotation to the centered mobile set and move it onto the
	// target centroid.
	rotated := must(R.TimesDense(X))
	out := make([]pdb.Coords, cols)
	for i := 0; i < cols; i++ {
		out[i] = pdb.Coords{
			X: rotated.Get(0, i) + ct.X,
			Y: rotated.Get(1, i) + ct.Y,
			Z: rotated.Get(2, i) + ct.Z,
		}
	}
	return out
}

// centroid calculates the average position of a set of atoms.
func centroid(cs []pdb.Coords) pdb.Coords {
	var c pdb.Coords
	for _, a := range cs {
		c.X += a.X
		c.Y += a.Y
		c.Z += a.Z
	}
	n := float64(len(cs))
	return pdb.Coords{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

// must panics if the result of a dense matrix operation returns an error.
func must(A *matrix.DenseMatrix, err error) *matrix.DenseMatrix {
	if err != nil {
		panic(err)
	}
	return A
}
