package all

import (
	// Import all the formatters so they register themselves
	_ "github.com/darianmavgo/arff2sql/formatters/sql"
	_ "github.com/darianmavgo/arff2sql/formatters/sqlite"
	_ "github.com/darianmavgo/arff2sql/formatters/xlsx"
)
