package booking

import "github.com/chaxxbarbers/booking-service/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД, поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// InsertFailure описывает запись, которую не удалось вставить при пакетной вставке.
// Index указывает на позицию записи во входном слайсе InsertBookings.
type InsertFailure struct {
	Index int
	Err   error
}
