package main

import (
	"context"
	"io"
	"os"
	"time"

	resumy "github.com/resumy/go-resumy"
)

// Builder is the interface for the PDF building service.
type Builder interface {
	Build(ctx context.Context, input resumy.BuildInput) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Builder = (*resumy.Service)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	NewBuilder func(timeout time.Duration) Builder
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewBuilder: func(timeout time.Duration) Builder {
			return resumy.New(resumy.WithTimeout(timeout))
		},
	}
}
