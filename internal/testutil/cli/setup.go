package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/app"
	clipkg "github.com/chmielowski/baggage/internal/cli"
	"github.com/chmielowski/baggage/internal/database"
	"github.com/chmielowski/baggage/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This lives in its own package so service tests can import testutil without
// pulling in the app container.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// Events are tested elsewhere
	appInstance := app.New(database.NewRepository(db))

	return db, appInstance
}

// ExecuteCLICommand runs cmd against testApp instead of the on-disk database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (stdout, stderr string, err error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetContext(clipkg.WithApp(context.Background(), testApp))
	return testutil.ExecuteCommand(t, cmd, args)
}
