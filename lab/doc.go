// Package lab implements the perceptual color metric used by all selection
// strategies: conversion of 8-bit sRGB colors into CIELAB coordinates
// (D65 illuminant) and the CIE76 Delta E distance between them.
//
// The conversion is a pure function pair {RGBToLab, DeltaE}; callers above
// depend only on this contract, so a different metric space can be swapped
// in without touching any strategy.
//
//   - RGBToLab — normalize → gamma-expand → sRGB→XYZ → D65 scale → ƒ(t) → Lab.
//   - DeltaE   — plain Euclidean distance over (L, a, b), i.e. CIE76.
//
// Complexity: O(1) per call, no allocations.
package lab
