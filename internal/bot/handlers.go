package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/censodigital/censo_registro_bot/internal/registration"
	"github.com/censodigital/censo_registro_bot/internal/session"
)

const (
	cmdStart    = "start"
	cmdRegister = "registro"
	cmdCancel   = "cancelar"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type recordAppender interface {
	AppendRecord(ctx context.Context, rec *registration.Record) error
}

type documentSaver interface {
	SaveFile(fileID string) (string, error)
}

// BotService drives the census dialogue: it turns transport updates into
// registration events, feeds them through the state machine, and sends the
// resulting prompts back.
type BotService struct {
	botAPI *tgbotapi.BotAPI
	sender messageSender
	store  *session.Store
	writer recordAppender
	saver  documentSaver
	log    zerolog.Logger
}

func New(
	botAPI *tgbotapi.BotAPI,
	store *session.Store,
	writer recordAppender,
	saver documentSaver,
	log zerolog.Logger,
) *BotService {
	return &BotService{
		botAPI: botAPI,
		sender: botAPI,
		store:  store,
		writer: writer,
		saver:  saver,
		log:    log,
	}
}

// Start runs the polling loop until ctx is cancelled. Updates are handled
// one at a time, which keeps each user's transitions in arrival order.
func (b *BotService) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.botAPI.StopReceivingUpdates()
			return nil
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *BotService) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	ev, fileID := eventFromMessage(update.Message)
	b.handleEvent(ctx, ev, fileID)
}

func eventFromMessage(msg *tgbotapi.Message) (registration.Event, string) {
	ev := registration.Event{UserID: msg.Chat.ID}

	switch {
	case msg.IsCommand():
		ev.Kind = registration.KindCommand
		ev.Text = msg.Command()
		return ev, ""
	case msg.Document != nil:
		ev.Kind = registration.KindDocument
		ev.AttachmentPresent = true
		ev.Caption = msg.Caption
		return ev, msg.Document.FileID
	case len(msg.Photo) > 0:
		ev.Kind = registration.KindPhoto
		ev.AttachmentPresent = true
		ev.Caption = msg.Caption
		return ev, msg.Photo[len(msg.Photo)-1].FileID
	default:
		ev.Kind = registration.KindText
		ev.Text = msg.Text
		return ev, ""
	}
}

func (b *BotService) handleEvent(ctx context.Context, ev registration.Event, fileID string) {
	if ev.Kind == registration.KindCommand {
		b.handleCommand(ev)
		return
	}

	sess := b.store.Get(ev.UserID)
	if sess == nil {
		// Nothing awaited from this user; answer with a hint, never crash.
		b.reply(ev.UserID, registration.MsgNoSession)
		return
	}

	awaitingDocument := sess.Current == registration.FieldDocument
	out := registration.Advance(sess, ev)

	if out.Done {
		b.store.Remove(ev.UserID)
	}

	if awaitingDocument && ev.AttachmentPresent && fileID != "" {
		b.archiveDocument(ev.UserID, fileID)
	}

	if out.Record != nil {
		// The session is already gone: one append attempt, no retry.
		if err := b.writer.AppendRecord(ctx, out.Record); err != nil {
			b.log.Error().Err(err).Int64("user_id", ev.UserID).Msg("record append failed")
			b.reply(ev.UserID, registration.MsgSaveFailed)
			return
		}

		b.log.Info().Int64("user_id", ev.UserID).Msg("registration recorded")
		b.reply(ev.UserID, registration.MsgSaved)
		return
	}

	if out.Reply != "" {
		b.reply(ev.UserID, out.Reply)
	}
}

func (b *BotService) handleCommand(ev registration.Event) {
	switch ev.Text {
	case cmdRegister:
		// A /registro mid-flow discards the previous progress.
		b.store.Put(registration.NewSession(ev.UserID))
		b.reply(ev.UserID, registration.MsgWelcome)
	case cmdCancel:
		sess := b.store.Get(ev.UserID)
		if sess == nil {
			b.reply(ev.UserID, registration.MsgNoSession)
			return
		}

		out := registration.Cancel(sess)
		b.store.Remove(ev.UserID)
		b.reply(ev.UserID, out.Reply)
	case cmdStart:
		b.reply(ev.UserID, registration.MsgNoSession)
	default:
		b.reply(ev.UserID, registration.MsgNoSession)
	}
}

func (b *BotService) archiveDocument(userID int64, fileID string) {
	if b.saver == nil {
		return
	}

	path, err := b.saver.SaveFile(fileID)
	if err != nil {
		b.log.Warn().Err(err).Int64("user_id", userID).Msg("could not archive bill document")
		return
	}

	b.log.Debug().Int64("user_id", userID).Str("path", path).Msg("bill document archived")
}

func (b *BotService) reply(userID int64, text string) {
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := b.sender.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("user_id", userID).Msg("failed to send message")
	}
}
