package update_task_status

import "github.com/m04kA/SMC-PropertyService/internal/domain"

// Request входные данные для смены статуса задачи
type Request struct {
	ActorID int64
	TaskID  int64
	Status  string
}

// Response результат смены статуса
type Response struct {
	Task *domain.Task

	// CleanedApartmentIDs квартиры, отмеченные убранными при завершении задачи
	CleanedApartmentIDs []int64
}
