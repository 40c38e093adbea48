// Package command parses submitted lines and executes the ros2 command set
// against the data source, producing a typed Result.
package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Env is what command handlers need from the session.
type Env interface {
	// Directory returns the candidates of one kind in natural order
	Directory(ctx context.Context, kind source.Kind) ([]source.Entry, error)
	// Send posts text to a topic
	Send(ctx context.Context, channelID, text string) error
	// ReferencedIDs returns the distinct mentioned identities in first-seen order
	ReferencedIDs() []string
}

// Interpreter executes command lines.
type Interpreter struct {
	env Env
	log *zap.Logger
}

// New creates an interpreter. A nil logger disables logging.
func New(env Env, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interpreter{env: env, log: log.Named("command")}
}

// keywords are the tokens offered as "did you mean" hints.
var keywords = []string{"help", "ros2"}

// Execute runs one line. It never returns a Go error: user and fetch
// problems are reported as KindError results.
func (in *Interpreter) Execute(ctx context.Context, line string) Result {
	id := uuid.NewString()
	start := time.Now()

	res := in.execute(ctx, line)

	in.log.Debug("command executed",
		zap.String("command_id", id),
		zap.String("line", line),
		zap.Stringer("result", res.Kind),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res
}

func (in *Interpreter) execute(ctx context.Context, line string) Result {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return failure(Failure{Message: "No command provided. Type help to see commands."})
	}

	cmd, args := parts[0], parts[1:]

	if cmd == "help" || (cmd == "ros2" && len(args) > 0 && args[0] == "help") {
		return Help()
	}

	if cmd == "ros2" && len(args) > 0 {
		sub, subArgs := args[0], args[1:]
		switch sub {
		case "node":
			return in.node(ctx, subArgs)
		case "topic":
			return in.topic(ctx, subArgs)
		case "pkg":
			return in.pkg(ctx, subArgs)
		case "service":
			return in.service(ctx, subArgs)
		default:
			return failure(Failure{
				Message: "Unknown ros2 subcommand",
				Subject: sub,
				Hint:    suggest(sub, domainKeywords()) + "Run help to see available commands.",
			})
		}
	}

	return failure(Failure{
		Message: "Command not found",
		Subject: cmd,
		Hint:    suggest(cmd, keywords) + runHelpSuggestion,
	})
}

// suggest returns a "did you mean" prefix for tokens close to a known keyword.
func suggest(token string, known []string) string {
	best, bestDist := "", 3
	for _, k := range known {
		if d := levenshtein.ComputeDistance(strings.ToLower(token), k); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best == "" || best == token {
		return ""
	}
	return fmt.Sprintf("Did you mean %q? ", best)
}

func domainKeywords() []string {
	out := make([]string, 0, len(Domains))
	for _, d := range Domains {
		out = append(out, d.Keyword())
	}
	return out
}

// incomplete is returned when a domain is invoked without an action.
func incomplete(d Domain) Result {
	return failure(Failure{Message: "Incomplete " + d.Keyword() + " command.", Usage: Usage(d)})
}

// invalid is returned for an unknown action or missing arguments.
func invalid(d Domain) Result {
	return failure(Failure{Message: "Invalid " + d.Keyword() + " command.", Usage: Usage(d)})
}

func fetchFailure(kind source.Kind, err error) Result {
	return failure(Failure{Message: "Could not load " + kind.String() + "s", Subject: err.Error()})
}
