// Package relay provides the upload orchestration service: credential check,
// archive copy, mapping issuance, link shortening and the reply to the sender.
package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/config"
	serviceErrors "github.com/nathdadu26/viralbox-uploader-bot/internal/service/errors"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/mapping"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/modelmsg"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/relay"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/secretary"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/shortener"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/storage"
	storageErrors "github.com/nathdadu26/viralbox-uploader-bot/internal/storage/errors"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/transport/telegram"
)

// mappingInsertAttempts bounds the collision retry loop around mapping issuance.
const mappingInsertAttempts = 5

// Check interface implementation explicitly
var (
	_ relay.Processor = (*Relay)(nil)
)

// Relay struct defines data structure handling and provides support for adding new implementations.
type Relay struct {
	botCfg    *config.BotConfig
	shortCfg  *config.ShortenerConfig
	storage   storage.RelayStorage
	generator mapping.Generator
	secretary secretary.Secretary
	shortener shortener.Client
	sender    telegram.Sender
	log       *zap.SugaredLogger
}

// InitRelay initializes a Relay object and sets its attributes.
func InitRelay(cfg *config.Config, st storage.RelayStorage, gen mapping.Generator, secr secretary.Secretary, short shortener.Client, sender telegram.Sender, log *zap.SugaredLogger) (*Relay, error) {
	if st == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	if secr == nil {
		return nil, &serviceErrors.ServiceFoundNilSecretary{Msg: "nil secretary was passed to service initializer"}
	}
	if gen == nil {
		return nil, &serviceErrors.ServiceFoundNilDependency{Msg: "nil generator was passed to service initializer"}
	}
	if short == nil {
		return nil, &serviceErrors.ServiceFoundNilDependency{Msg: "nil shortening client was passed to service initializer"}
	}
	if sender == nil {
		return nil, &serviceErrors.ServiceFoundNilDependency{Msg: "nil sender was passed to service initializer"}
	}
	return &Relay{
		botCfg:    cfg.BotConfig,
		shortCfg:  cfg.ShortenerConfig,
		storage:   st,
		generator: gen,
		secretary: secr,
		shortener: short,
		sender:    sender,
		log:       log,
	}, nil
}

// Start handles the /start command.
func (r *Relay) Start(ctx context.Context, msg *telegram.Message) {
	if _, err := r.credential(ctx, msg.From.ID); err == nil {
		r.reply(ctx, msg, "📂 Send A Media To Upload !", false)
		return
	}
	welcome := fmt.Sprintf(
		"👋 Welcome %s to %s Uploader Bot!\n\n"+
			"1️⃣ Create an Account on %s\n"+
			"2️⃣ Go To 👉 https://%s/member/tools/api\n"+
			"3️⃣ Copy your API Key\n"+
			"4️⃣ Send /set_api <API_KEY>\n"+
			"5️⃣ Send any media to upload !",
		msg.From.FirstName, r.shortCfg.ShortenerDomain, r.shortCfg.ShortenerDomain, r.shortCfg.ShortenerDomain)
	r.reply(ctx, msg, welcome, false)
}

// SetAPIKey handles the /set_api command, upserting the user's ciphered credential.
func (r *Relay) SetAPIKey(ctx context.Context, msg *telegram.Message, args []string) {
	if len(args) == 0 {
		r.reply(ctx, msg, fmt.Sprintf(
			"❌ Usage: /set_api <API_KEY>\n\nGet your API key from: https://%s/member/tools/api",
			r.shortCfg.ShortenerDomain), false)
		return
	}
	err := r.storage.SetCredential(ctx, msg.From.ID, r.secretary.Encode(args[0]))
	if err != nil {
		r.log.Errorw("setting credential failed", "user", msg.From.ID, "error", err)
		r.reply(ctx, msg, "❌ Could not save your API key, please try again later.", false)
		return
	}
	r.reply(ctx, msg, "✅ API Key saved successfully!\n\n📂 Now send any media to upload!", false)
}

// Upload runs one media message through the archive, mapping, shortening and
// reply sequence. Every failure exit replies to the sender; nothing is retried
// except mapping issuance on id collision.
func (r *Relay) Upload(ctx context.Context, msg *telegram.Message) {
	attempt := uuid.NewString()
	log := r.log.With("attempt", attempt, "user", msg.From.ID)

	apiKey, err := r.credential(ctx, msg.From.ID)
	if err != nil {
		log.Infow("upload rejected, no usable credential")
		r.reply(ctx, msg, fmt.Sprintf(
			"⚠️ Please set your API key first!\n\n"+
				"👉 Get it from: https://%s/member/tools/api\n"+
				"👉 Then send: /set_api <API_KEY>",
			r.shortCfg.ShortenerDomain), false)
		return
	}

	// archive the media by copying it into the storage channel; a failure here
	// leaves nothing persisted
	copiedID, err := r.sender.CopyMessage(ctx, msg.Chat.ID, msg.MessageID, r.botCfg.StorageChannelID)
	if err != nil {
		log.Errorw("archive copy failed", "error", err)
		r.reply(ctx, msg, "❌ Upload failed! Please try again later.", true)
		return
	}
	stored := modelmsg.StoredMessage{ChannelID: r.botCfg.StorageChannelID, MessageID: copiedID}

	// durability boundary: once the mapping is inserted the content stays
	// retrievable by its id regardless of what happens afterwards
	mappingID, err := r.assignMapping(ctx, stored)
	if err != nil {
		log.Errorw("mapping issuance failed", "error", err)
		r.reply(ctx, msg, "❌ Upload failed! Please try again later.", true)
		return
	}
	log = log.With("mapping", mappingID)

	workerURL := r.shortCfg.WorkerDomain + "/" + mappingID
	shortURL, err := r.shortener.Shorten(ctx, apiKey, workerURL)
	if err != nil {
		// single folded failure mode for the user, cause kind kept for the log
		log.Errorw("shortening failed", "error", err)
		r.reply(ctx, msg, "❌ URL shortening failed!\nPlease check your API key.", true)
		return
	}

	if err := r.storage.RecordLink(ctx, workerURL, shortURL); err != nil {
		// audit sink only, the shortened link already exists and is served
		log.Warnw("link record failed", "error", err)
	}
	r.reply(ctx, msg, shortURL, true)
	log.Infow("upload complete", "short_url", shortURL)
}

// credential resolves and deciphers the user's stored API key. A decipher
// failure counts as a missing credential, the user re-sets the key.
func (r *Relay) credential(ctx context.Context, userID int64) (string, error) {
	ciphered, err := r.storage.GetCredential(ctx, userID)
	if err != nil {
		return "", err
	}
	apiKey, err := r.secretary.Decode(ciphered)
	if err != nil {
		r.log.Warnw("stored credential could not be deciphered", "user", userID, "error", err)
		return "", err
	}
	return apiKey, nil
}

// assignMapping draws fresh identifiers until one inserts cleanly, giving up
// after mappingInsertAttempts collisions.
func (r *Relay) assignMapping(ctx context.Context, stored modelmsg.StoredMessage) (string, error) {
	for i := 0; i < mappingInsertAttempts; i++ {
		mappingID := r.generator.Generate()
		err := r.storage.InsertMapping(ctx, mappingID, stored)
		if err == nil {
			return mappingID, nil
		}
		var alreadyExistsError *storageErrors.AlreadyExistsError
		if errors.As(err, &alreadyExistsError) {
			r.log.Warnw("mapping id collision", "mapping", mappingID)
			continue
		}
		return "", err
	}
	return "", &serviceErrors.MappingExhaustedError{Attempts: mappingInsertAttempts}
}

func (r *Relay) reply(ctx context.Context, msg *telegram.Message, text string, asReply bool) {
	var replyTo int64
	if asReply {
		replyTo = msg.MessageID
	}
	if err := r.sender.SendMessage(ctx, msg.Chat.ID, text, replyTo); err != nil {
		r.log.Errorw("sending reply failed", "chat", msg.Chat.ID, "error", err)
	}
}
