package order

import (
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
