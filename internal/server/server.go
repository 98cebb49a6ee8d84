package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за
// обработку конкретных сущностей.
type Server struct {
	DealServer
	SummaryServer
	TaskServer
	SyncServer
}

func NewServer(
	dealServer DealServer,
	summaryServer SummaryServer,
	taskServer TaskServer,
	syncServer SyncServer,
) Server {
	return Server{
		DealServer:    dealServer,
		SummaryServer: summaryServer,
		TaskServer:    taskServer,
		SyncServer:    syncServer,
	}
}
