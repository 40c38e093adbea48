package command

import (
	"context"
	"strings"

	"github.com/avitaltamir/rostui/internal/resolve"
	"github.com/avitaltamir/rostui/internal/source"
	"go.uber.org/zap"
)

// callArgs are the parsed arguments of "ros2 service call".
type callArgs struct {
	service string
	message string
	channel string
	invalid []string
}

// parseCallArgs splits leading positional tokens from the flags that follow.
func parseCallArgs(args []string) callArgs {
	var out callArgs

	i := 0
	var positional []string
	for ; i < len(args) && !strings.HasPrefix(args[i], "-"); i++ {
		positional = append(positional, args[i])
	}
	out.service = strings.Join(positional, " ")

	for i < len(args) {
		flag := args[i]
		i++
		switch flag {
		case "-m", "--message":
			start := i
			for i < len(args) && !strings.HasPrefix(args[i], "-") {
				i++
			}
			if i == start {
				out.invalid = append(out.invalid, flag)
				continue
			}
			out.message = strings.Join(args[start:i], " ")
		case "-c", "--channel", "-s", "--service":
			if i >= len(args) || strings.HasPrefix(args[i], "-") {
				out.invalid = append(out.invalid, flag)
				continue
			}
			if flag == "-c" || flag == "--channel" {
				out.channel = args[i]
			} else {
				out.service = args[i]
			}
			i++
		default:
			out.invalid = append(out.invalid, flag)
		}
	}
	return out
}

func (in *Interpreter) call(ctx context.Context, args []string) Result {
	parsed := parseCallArgs(args)
	if len(parsed.invalid) > 0 {
		return failure(Failure{
			Message: "Invalid flag(s)",
			Subject: strings.Join(parsed.invalid, ", "),
			Usage:   Usage(DomainService),
		})
	}
	if parsed.service == "" {
		return failure(Failure{Message: "Missing service identifier.", Usage: Usage(DomainService)})
	}

	e, err := in.resolveService(ctx, parsed.service)
	if err != nil {
		return fetchFailure(source.KindNode, err)
	}
	if e == nil {
		return serviceNotFound(parsed.service, Usage(DomainService))
	}

	channelID, ok := in.resolveChannel(ctx, parsed.channel)
	if ok {
		text := "<@" + e.ID + ">"
		if parsed.message != "" {
			text += " " + parsed.message
		}
		in.send(ctx, channelID, text)
	} else {
		in.log.Info("no channel available, call not delivered", zap.String("service", e.ID))
	}
	return selection(e.ID, source.KindService)
}

// resolveChannel picks the target topic: the explicit token, then a topic
// named general, then the first topic.
func (in *Interpreter) resolveChannel(ctx context.Context, token string) (string, bool) {
	topics, err := in.env.Directory(ctx, source.KindTopic)
	if err != nil {
		in.log.Warn("directory fetch failed", zap.Stringer("kind", source.KindTopic), zap.Error(err))
		return "", false
	}
	if token != "" {
		if e, ok := resolve.Entry(token, topics); ok {
			return e.ID, true
		}
	}
	for _, t := range topics {
		if strings.EqualFold(t.DisplayName, "general") {
			return t.ID, true
		}
	}
	if len(topics) > 0 {
		return topics[0].ID, true
	}
	return "", false
}
