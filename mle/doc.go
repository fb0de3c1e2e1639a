// Package mle provides shared infrastructure for fitting statistical
// models by maximum likelihood: an interface for models that expose a
// log-likelihood surface, a container for the quantities produced by a
// fit, and bracketed one-dimensional searches used for scalar
// estimates and likelihood profiles.
package mle
