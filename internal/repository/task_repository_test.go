package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todoapp/internal/model"
	"todoapp/internal/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func taskRows(tasks ...model.Task) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "completed", "created_at", "updated_at"})
	for _, task := range tasks {
		rows.AddRow(task.ID, task.UserID, task.Title, task.Description, task.Completed, task.CreatedAt, task.UpdatedAt)
	}
	return rows
}

func TestTaskRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	task := &model.Task{
		UserID: "u1",
		Title:  "Buy milk",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Create(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	now := time.Now()
	stored := model.Task{ID: 5, UserID: "u1", Title: "Buy milk", Completed: false, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .* AND user_id = .*`).
		WithArgs(int64(5), "u1").
		WillReturnRows(taskRows(stored))

	// Act
	task, err := taskRepo.GetByID(context.Background(), "u1", 5)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(5), task.ID)
	assert.Equal(t, "u1", task.UserID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .* AND user_id = .*`).
		WithArgs(int64(5), "u2").
		WillReturnRows(taskRows())

	// Act
	task, err := taskRepo.GetByID(context.Background(), "u2", 5)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_StorageError(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .* AND user_id = .*`).
		WillReturnError(assert.AnError)

	// Act
	task, err := taskRepo.GetByID(context.Background(), "u1", 5)

	// Assert
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ListByOwner(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	now := time.Now()
	first := model.Task{ID: 1, UserID: "u1", Title: "first", CreatedAt: now, UpdatedAt: now}
	second := model.Task{ID: 3, UserID: "u1", Title: "second", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE user_id = .* ORDER BY id`).
		WithArgs("u1").
		WillReturnRows(taskRows(first, second))

	// Act
	tasks, err := taskRepo.ListByOwner(context.Background(), "u1")

	// Assert
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ListByOwner_Empty(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE user_id = .* ORDER BY id`).
		WithArgs("u2").
		WillReturnRows(taskRows())

	// Act
	tasks, err := taskRepo.ListByOwner(context.Background(), "u2")

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	now := time.Now()
	task := &model.Task{ID: 5, UserID: "u1", Title: "Buy oat milk", Completed: true, CreatedAt: now, UpdatedAt: now}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Update(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = .* AND user_id = .*`).
		WithArgs(int64(5), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Delete(context.Background(), "u1", 5)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = .* AND user_id = .*`).
		WithArgs(int64(42), "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Delete(context.Background(), "u1", 42)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
