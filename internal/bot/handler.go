// Package bot turns incoming Telegram updates into catalog lookups and
// replies: a caption with the watch link, then the franchise list.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"kinolink/internal/catalog"
	"kinolink/internal/franchise"
	"kinolink/internal/logging"
	"kinolink/internal/render"
	"kinolink/internal/resolve"
	"kinolink/internal/services"
	"kinolink/internal/sslink"
	"kinolink/internal/telegram"
	"kinolink/internal/textutil"
)

const (
	msgGreeting = "Пришли название — пришлю постер, год, рейтинг, жанры и ссылки на все части серии (если есть)."
	msgBadQuery = "Не понял запрос. Пример: «Пила 2004», «Гарри Поттер»."
	msgNoMatch  = "Не нашёл по API Кинопоиска. Попробуй «Название ГОД»."
	msgFailure  = "Упс, что-то пошло не так. Попробуй ещё раз позже."
)

// LinkResolver resolves mirror links to their final URLs.
type LinkResolver interface {
	FinalURL(ctx context.Context, rawURL string) (string, error)
}

// Deps lists the collaborators a Handler needs.
type Deps struct {
	Searcher  catalog.Searcher
	Resolver  *resolve.Resolver
	Franchise *franchise.Aggregator
	Links     LinkResolver
	Sender    telegram.Sender
	Logger    *slog.Logger
}

// Handler processes one update at a time; instances are safe for concurrent
// use by the webhook server.
type Handler struct {
	searcher  catalog.Searcher
	resolver  *resolve.Resolver
	franchise *franchise.Aggregator
	links     LinkResolver
	sender    telegram.Sender
	logger    *slog.Logger
}

// New validates the dependencies and builds a Handler.
func New(deps Deps) (*Handler, error) {
	switch {
	case deps.Searcher == nil:
		return nil, errors.New("bot: searcher required")
	case deps.Resolver == nil:
		return nil, errors.New("bot: resolver required")
	case deps.Franchise == nil:
		return nil, errors.New("bot: franchise aggregator required")
	case deps.Links == nil:
		return nil, errors.New("bot: link resolver required")
	case deps.Sender == nil:
		return nil, errors.New("bot: sender required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		searcher:  deps.Searcher,
		resolver:  deps.Resolver,
		franchise: deps.Franchise,
		links:     deps.Links,
		sender:    deps.Sender,
		logger:    logging.WithComponent(logger, "bot"),
	}, nil
}

// HandleUpdate routes one update. Updates without a text message and unknown
// commands are ignored.
func (h *Handler) HandleUpdate(ctx context.Context, update telegram.Update) error {
	if update.Message == nil {
		return nil
	}
	text := strings.TrimSpace(update.Message.Text)
	if text == "" {
		return nil
	}
	chatID := update.Message.Chat.ID
	ctx = services.WithChatID(ctx, chatID)

	if strings.HasPrefix(text, "/") {
		if command(text) == "/start" {
			return h.sender.SendMessage(ctx, chatID, msgGreeting)
		}
		return nil
	}
	return h.HandleQuery(ctx, chatID, text)
}

// HandleQuery runs the full pipeline for one free-text query: parse, resolve,
// canonical link, details, franchise, reply. Transport failures on the link
// or detail fetch abort the request with the generic failure message; a
// rejected detail status only trims the reply.
func (h *Handler) HandleQuery(ctx context.Context, chatID int64, text string) error {
	query := textutil.ParseQuery(text)
	if query.Title == "" {
		return h.sender.SendMessage(ctx, chatID, msgBadQuery)
	}

	best, err := h.resolver.Best(ctx, query)
	if err != nil {
		h.logger.Error("resolution failed", logging.Error(err), logging.Int64("chat_id", chatID))
		if errors.Is(err, services.ErrBadQuery) {
			return h.sender.SendMessage(ctx, chatID, msgBadQuery)
		}
		return h.sender.SendMessage(ctx, chatID, msgFailure)
	}
	if best == nil {
		return h.sender.SendMessage(ctx, chatID, msgNoMatch)
	}

	// The mirror redirect decides the film/series split authoritatively;
	// an unreachable mirror fails the whole request.
	link := sslink.WatchURL(best.ID, best.Kind)
	final, err := h.links.FinalURL(ctx, link)
	if err != nil {
		h.logger.Error("final url resolution failed", logging.Error(err), logging.Int64("catalog_id", best.ID))
		return h.sender.SendMessage(ctx, chatID, msgFailure)
	}
	best.Kind = sslink.KindFromFinalURL(final, best.Kind)
	link = final

	// A rejected detail status comes back as a nil record and trims the
	// reply; only transport failures land in err.
	details, err := h.searcher.GetByID(ctx, best.ID, catalog.DetailFields)
	if err != nil {
		h.logger.Error("detail lookup failed", logging.Error(err), logging.Int64("catalog_id", best.ID))
		return h.sender.SendMessage(ctx, chatID, msgFailure)
	}

	items := h.franchise.Collect(ctx, details, *best, query.Title)

	caption := render.Caption(details, best.Kind, link)
	if err := h.sendCaption(ctx, chatID, details, caption); err != nil {
		return err
	}

	if list := render.FranchiseList(items); list != "" {
		return h.sender.SendMessage(ctx, chatID, list)
	}
	return nil
}

// sendCaption prefers a photo message and falls back to plain text when the
// poster is missing or the photo send is rejected.
func (h *Handler) sendCaption(ctx context.Context, chatID int64, details *catalog.Record, caption string) error {
	poster := ""
	if details != nil {
		poster = details.PosterURL()
	}
	if poster != "" {
		err := h.sender.SendPhoto(ctx, chatID, poster, caption)
		if err == nil {
			return nil
		}
		h.logger.Warn("photo send failed, falling back to text", logging.Error(err))
	}
	return h.sender.SendMessage(ctx, chatID, caption)
}

// command extracts the command name, dropping arguments and the @botname
// suffix of group-chat commands.
func command(text string) string {
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return cmd
}
