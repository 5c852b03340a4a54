// Package formatters maintains the registry of output formatter drivers.
package formatters

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/darianmavgo/arff2sql/config"
	"github.com/darianmavgo/arff2sql/formatters/common"
)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]common.Driver)
)

// Register makes a formatter driver available by the provided name.
// If Register is called twice with the same name or if driver is nil, it panics.
func Register(name string, driver common.Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("formatters: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("formatters: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

// Open opens a formatter by driver name, writing to w with the given
// dialect. A nil dialect uses the default.
func Open(driverName string, w io.Writer, dialect *config.Dialect) (common.Formatter, error) {
	driversMu.RLock()
	driver, ok := drivers[driverName]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("formatters: unknown driver %q (forgotten import?)", driverName)
	}
	if dialect == nil {
		dialect = config.DefaultDialect()
	}
	return driver.Open(w, dialect)
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]string, 0, len(drivers))
	for name := range drivers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
