package mail

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/config"
)

// mockSender is a mock implementation of the Sender interface.
type mockSender struct {
	SendFunc func(msg Message) error
}

func (m *mockSender) Send(msg Message) error {
	return m.SendFunc(msg)
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(&config.MailConfig{}, 1)

	wp.Dispatch(Message{To: "juan@example.com"})

	select {
	case msg := <-wp.jobs:
		assert.Equal(t, "juan@example.com", msg.To)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_DeliversThroughSender(t *testing.T) {
	wp := NewWorkerPool(&config.MailConfig{}, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	wp.sender = &mockSender{
		SendFunc: func(msg Message) error {
			assert.Equal(t, "juan@example.com", msg.To)
			assert.Equal(t, "Contraseña para inicio de sesión", msg.Subject)
			assert.Contains(t, msg.HTML, "secreta123")
			wg.Done()
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(Credenciales("juan@example.com", "secreta123"))
	wg.Wait()
}

func TestTemplates(t *testing.T) {
	rec := RecuperarPassword("admin@example.com", "tmpPass9a")
	assert.Equal(t, "Nueva contraseña temporal", rec.Subject)
	assert.Contains(t, rec.HTML, "<strong>tmpPass9a</strong>")

	est := EstadoEquipo("juan@example.com", "Reparado", "Cambio de pantalla", "Dell XPS 13 (LAP3F0A1C)")
	assert.Equal(t, "Estado actual de tu equipo", est.Subject)
	assert.Contains(t, est.HTML, "Reparado")
	assert.Contains(t, est.HTML, "Cambio de pantalla")
	assert.Contains(t, est.HTML, "LAP3F0A1C")
}
