package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"github.com/saulo-duarte/learnhub/internal/config"
)

func exprSQL(t *testing.T, v interface{}) string {
	t.Helper()
	expr, ok := v.(clause.Expr)
	require.True(t, ok, "expected clause.Expr, got %T", v)
	return expr.SQL
}

func TestUpsertAssignments(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		set := UpsertAssignments(config.DriverPostgres, config.PassPolicyLastWriteWins)
		assert.Equal(t, "GREATEST(quiz_progress.best_score, EXCLUDED.best_score)", exprSQL(t, set["best_score"]))
		assert.Equal(t, "quiz_progress.attempts_count + 1", exprSQL(t, set["attempts_count"]))
		assert.Equal(t, "EXCLUDED.last_attempt", exprSQL(t, set["last_attempt"]))
		assert.Equal(t, "EXCLUDED.passed", exprSQL(t, set["passed"]))
	})

	t.Run("PostgresEverPassed", func(t *testing.T) {
		set := UpsertAssignments(config.DriverPostgres, config.PassPolicyEverPassed)
		assert.Equal(t, "(quiz_progress.passed OR EXCLUDED.passed)", exprSQL(t, set["passed"]))
	})

	t.Run("MySQL", func(t *testing.T) {
		set := UpsertAssignments(config.DriverMySQL, config.PassPolicyLastWriteWins)
		assert.Equal(t, "GREATEST(best_score, VALUES(best_score))", exprSQL(t, set["best_score"]))
		assert.Equal(t, "attempts_count + 1", exprSQL(t, set["attempts_count"]))
		assert.Equal(t, "VALUES(passed)", exprSQL(t, set["passed"]))
	})

	t.Run("MySQLEverPassed", func(t *testing.T) {
		set := UpsertAssignments(config.DriverMySQL, config.PassPolicyEverPassed)
		assert.Equal(t, "(passed OR VALUES(passed))", exprSQL(t, set["passed"]))
	})
}
