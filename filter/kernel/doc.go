// Package kernel provides immutable convolution kernels.
//
// A [Kernel] is an ordered sequence of weights plus an offset: the index of
// the weight aligned with the sample being computed. Kernels never change
// after construction; arithmetic such as [Kernel.Normalize] returns a new
// Kernel.
//
//	k, _ := kernel.New(1, 2, 1)  // offset 1
//	k = k.Normalize()             // 0.25, 0.5, 0.25
//
// Common smoothing shapes are available as constructors ([Uniform],
// [Binomial], [Gaussian], [Triangular], [Epanechnikov], [Cosine], [Tricube],
// [Biweight]) together with the edge-detecting [Laplacian].
package kernel
