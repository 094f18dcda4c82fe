package appointment

import (
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
)

// DB executor interfaces are shared with dbmetrics so the repository works
// against *sql.DB, *dbmetrics.DB and an open transaction alike
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
