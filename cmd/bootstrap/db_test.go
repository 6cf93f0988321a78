//go:build e2e

package bootstrap_test

import (
	"context"
	"testing"

	"fieldservice/cmd/bootstrap"
	"fieldservice/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SchemaSuite struct {
	e2e.SharedSuite
}

func TestSchemaSuite(t *testing.T) {
	suite.Run(t, new(SchemaSuite))
}

func (s *SchemaSuite) TestCheckSchema() {
	t := s.T()
	ctx := context.Background()

	require.NoError(t, bootstrap.CheckSchema(ctx, s.DB))

	_, err := s.DB.Exec(ctx, `DROP TABLE notification_jobs`)
	require.NoError(t, err)

	err = bootstrap.CheckSchema(ctx, s.DB)
	require.Error(t, err)
	require.Contains(t, err.Error(), "notification_jobs")
}
