package config

import (
	"database/sql/driver"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// bcryptHash matches any bcrypt-shaped credential argument
type bcryptHash struct{}

func (bcryptHash) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && strings.HasPrefix(s, "$2")
}

func expectAdminCount(mock sqlmock.Sqlmock, count int) {
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE employee_id = \\?").
		WithArgs("12345678").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(count))
}

func TestSeeder_SecondRunCreatesNothing(t *testing.T) {
	db, mock := newMockDB(t)

	seeder := NewSeeder(db, SeedConfig{
		AdminEmployeeID: "12345678",
		AdminPassword:   "admin-password",
	})

	// First run: the account is absent and gets created with a hashed
	// credential, never the raw password.
	expectAdminCount(mock, 0)
	mock.ExpectExec("INSERT INTO `users`").
		WithArgs("12345678", bcryptHash{}, "Platform Operations", "Portal Admin", "ADMIN",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, seeder.Run())

	// Second run: the account exists, no INSERT may be issued.
	expectAdminCount(mock, 1)

	require.NoError(t, seeder.Run())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_SkipsAccountsWithoutPassword(t *testing.T) {
	db, mock := newMockDB(t)

	// No passwords configured: the seeder must not touch the database.
	seeder := NewSeeder(db, SeedConfig{
		AdminEmployeeID: "12345678",
		UserEmployeeID:  "87654321",
		User2EmployeeID: "user0002",
	})

	require.NoError(t, seeder.Run())
	require.NoError(t, mock.ExpectationsWereMet())
}
