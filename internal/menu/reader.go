package menu

import "context"

//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks

// IntReader supplies menu choices and operation values
type IntReader interface {
	ReadInt(ctx context.Context) (int, error)
}
