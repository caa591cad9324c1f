package note

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	CreateFunc      func(ctx context.Context, n *domain.Note) (*domain.Note, error)
	GetByIDFunc     func(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Note, error)
	SearchFunc      func(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.Note, error)
	UpdateFunc      func(ctx context.Context, n *domain.Note) (*domain.Note, error)
	DeleteFunc      func(ctx context.Context, ownerID, noteID uuid.UUID) error

	calls struct {
		Create []struct {
			Note *domain.Note
		}
		GetByID []struct {
			NoteID uuid.UUID
		}
		ListByOwner []struct {
			OwnerID uuid.UUID
		}
		Search []struct {
			OwnerID uuid.UUID
			Query   string
		}
		Update []struct {
			Note *domain.Note
		}
		Delete []struct {
			OwnerID uuid.UUID
			NoteID  uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByOwner sync.RWMutex
	lockSearch      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *noteRepoMock) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	callInfo := struct{ Note *domain.Note }{Note: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *noteRepoMock) CreateCalls() []struct{ Note *domain.Note } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteRepoMock) GetByID(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	if mock.GetByIDFunc == nil {
		panic("noteRepoMock.GetByIDFunc: method is nil but noteRepo.GetByID was just called")
	}
	callInfo := struct{ NoteID uuid.UUID }{NoteID: noteID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, noteID)
}

func (mock *noteRepoMock) GetByIDCalls() []struct{ NoteID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *noteRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Note, error) {
	if mock.ListByOwnerFunc == nil {
		panic("noteRepoMock.ListByOwnerFunc: method is nil but noteRepo.ListByOwner was just called")
	}
	callInfo := struct{ OwnerID uuid.UUID }{OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *noteRepoMock) ListByOwnerCalls() []struct{ OwnerID uuid.UUID } {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *noteRepoMock) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.Note, error) {
	if mock.SearchFunc == nil {
		panic("noteRepoMock.SearchFunc: method is nil but noteRepo.Search was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		Query   string
	}{OwnerID: ownerID, Query: query}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, ownerID, query)
}

func (mock *noteRepoMock) SearchCalls() []struct {
	OwnerID uuid.UUID
	Query   string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *noteRepoMock) Update(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	if mock.UpdateFunc == nil {
		panic("noteRepoMock.UpdateFunc: method is nil but noteRepo.Update was just called")
	}
	callInfo := struct{ Note *domain.Note }{Note: n}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, n)
}

func (mock *noteRepoMock) UpdateCalls() []struct{ Note *domain.Note } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *noteRepoMock) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("noteRepoMock.DeleteFunc: method is nil but noteRepo.Delete was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		NoteID  uuid.UUID
	}{OwnerID: ownerID, NoteID: noteID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, noteID)
}

func (mock *noteRepoMock) DeleteCalls() []struct {
	OwnerID uuid.UUID
	NoteID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
