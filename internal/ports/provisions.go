package ports

import "context"

// ProvisionsPort returns the "<version> <provides>" report for the
// installed LSB compliance packages, one package per line.
type ProvisionsPort interface {
	Provisions(ctx context.Context) (string, error)
}
