// Package stats provides the primitive statistics every other concord package
// is built on: mean, uncorrected (population, divisor n) variance and
// standard deviation, uncorrected covariance, and Pearson correlation.
//
// All moments here deliberately use the n divisor rather than the n-1 sample
// correction. The agreement identities (Theil partition, Kobayashi-Salam
// terms, SMA decomposition additivity) only hold exactly with population
// moments; mixing divisors breaks them.
package stats
