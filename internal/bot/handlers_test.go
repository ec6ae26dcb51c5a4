package bot

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/censodigital/censo_registro_bot/internal/registration"
	"github.com/censodigital/censo_registro_bot/internal/session"
)

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg.Text)
	}

	return tgbotapi.Message{}, nil
}

func (f *fakeSender) last() string {
	if len(f.sent) == 0 {
		return ""
	}

	return f.sent[len(f.sent)-1]
}

type fakeAppender struct {
	calls int
	rows  [][]string
	err   error
}

func (f *fakeAppender) AppendRecord(_ context.Context, rec *registration.Record) error {
	f.calls++
	if f.err != nil {
		return f.err
	}

	f.rows = append(f.rows, rec.Row())
	return nil
}

type fakeSaver struct {
	fileIDs []string
}

func (f *fakeSaver) SaveFile(fileID string) (string, error) {
	f.fileIDs = append(f.fileIDs, fileID)
	return "doc_files/" + fileID + ".jpg", nil
}

func newTestBot(appender *fakeAppender) (*BotService, *fakeSender, *session.Store) {
	sender := &fakeSender{}
	store := session.NewStore()

	b := &BotService{
		sender: sender,
		store:  store,
		writer: appender,
		saver:  &fakeSaver{},
		log:    zerolog.Nop(),
	}

	return b, sender, store
}

func command(userID int64, name string) registration.Event {
	return registration.Event{UserID: userID, Kind: registration.KindCommand, Text: name}
}

func text(userID int64, body string) registration.Event {
	return registration.Event{UserID: userID, Kind: registration.KindText, Text: body}
}

func runFlow(ctx context.Context, b *BotService, userID int64) {
	b.handleEvent(ctx, command(userID, cmdRegister), "")
	b.handleEvent(ctx, text(userID, "Ana Pérez"), "")
	b.handleEvent(ctx, text(userID, "12345678"), "")
	b.handleEvent(ctx, text(userID, "Calle 5"), "")
	b.handleEvent(ctx, registration.Event{
		UserID:            userID,
		Kind:              registration.KindDocument,
		AttachmentPresent: true,
	}, "file-1")
	b.handleEvent(ctx, text(userID, "Tienda Ana"), "")
	b.handleEvent(ctx, text(userID, "Venta de ropa"), "")
}

func TestFullRegistrationAppendsOneRow(t *testing.T) {
	appender := &fakeAppender{}
	b, sender, store := newTestBot(appender)
	ctx := context.Background()

	runFlow(ctx, b, 42)
	b.handleEvent(ctx, text(42, "si"), "")

	assert.Equal(t, 1, appender.calls)
	require.Len(t, appender.rows, 1)
	assert.Equal(t,
		[]string{"Ana Pérez", "12345678", "Calle 5", registration.BillCodeNotFound, "Tienda Ana", "Venta de ropa"},
		appender.rows[0][:6],
	)
	assert.Equal(t, registration.MsgSaved, sender.last())
	assert.Nil(t, store.Get(42))
}

func TestNegativeConfirmationWritesNothing(t *testing.T) {
	appender := &fakeAppender{}
	b, sender, store := newTestBot(appender)
	ctx := context.Background()

	runFlow(ctx, b, 42)
	b.handleEvent(ctx, text(42, "no"), "")

	assert.Zero(t, appender.calls)
	assert.Equal(t, registration.MsgCancelled, sender.last())
	assert.Nil(t, store.Get(42))
}

func TestWriteFailureDiscardsSessionWithoutRetry(t *testing.T) {
	appender := &fakeAppender{err: errors.New("sheet unreachable")}
	b, sender, store := newTestBot(appender)
	ctx := context.Background()

	runFlow(ctx, b, 42)
	b.handleEvent(ctx, text(42, "si"), "")

	assert.Equal(t, 1, appender.calls)
	assert.Equal(t, registration.MsgSaveFailed, sender.last())
	assert.Nil(t, store.Get(42))

	// Another message must not trigger a second attempt.
	b.handleEvent(ctx, text(42, "si"), "")
	assert.Equal(t, 1, appender.calls)
	assert.Equal(t, registration.MsgNoSession, sender.last())
}

func TestCancelIsIdempotent(t *testing.T) {
	appender := &fakeAppender{}
	b, sender, store := newTestBot(appender)
	ctx := context.Background()

	b.handleEvent(ctx, command(42, cmdRegister), "")
	b.handleEvent(ctx, text(42, "Ana Pérez"), "")

	b.handleEvent(ctx, command(42, cmdCancel), "")
	assert.Equal(t, registration.MsgCancelled, sender.last())
	assert.Nil(t, store.Get(42))

	b.handleEvent(ctx, command(42, cmdCancel), "")
	assert.Equal(t, registration.MsgNoSession, sender.last())
	assert.Zero(t, appender.calls)
}

func TestRestartDiscardsProgress(t *testing.T) {
	appender := &fakeAppender{}
	b, _, store := newTestBot(appender)
	ctx := context.Background()

	b.handleEvent(ctx, command(42, cmdRegister), "")
	b.handleEvent(ctx, text(42, "Ana Pérez"), "")
	b.handleEvent(ctx, command(42, cmdRegister), "")

	sess := store.Get(42)
	require.NotNil(t, sess)
	assert.Equal(t, registration.FieldName, sess.Current)
	assert.Empty(t, sess.Answers)
	assert.Zero(t, appender.calls)
}

func TestMessageWithoutSessionIsHarmless(t *testing.T) {
	appender := &fakeAppender{}
	b, sender, _ := newTestBot(appender)

	b.handleEvent(context.Background(), text(42, "hola"), "")

	assert.Equal(t, registration.MsgNoSession, sender.last())
	assert.Zero(t, appender.calls)
}

func TestAcceptedDocumentIsArchived(t *testing.T) {
	appender := &fakeAppender{}
	b, _, _ := newTestBot(appender)
	saver := b.saver.(*fakeSaver)
	ctx := context.Background()

	runFlow(ctx, b, 42)

	assert.Equal(t, []string{"file-1"}, saver.fileIDs)
}
