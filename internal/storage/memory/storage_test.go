package memory

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/players/internal/storage"
	"github.com/mcoot/players/internal/storage/storagetest"
)

func TestStorageSuite(t *testing.T) {
	suite.Run(t, &storagetest.Suite{
		NewStorage: func(*testing.T) storage.Storage { return New() },
	})
}
