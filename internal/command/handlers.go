package command

import (
	"context"
	"strings"

	"github.com/avitaltamir/rostui/internal/resolve"
	"github.com/avitaltamir/rostui/internal/source"
	"go.uber.org/zap"
)

func (in *Interpreter) node(ctx context.Context, args []string) Result {
	if len(args) == 0 {
		return incomplete(DomainNode)
	}
	switch {
	case args[0] == "list":
		return list(DomainNode)
	case args[0] == "info" && len(args) >= 2:
		name := strings.Join(args[1:], " ")
		e, res, ok := in.lookup(ctx, source.KindNode, name)
		if !ok {
			return res
		}
		if e == nil {
			return failure(Failure{Message: "Node not found", Subject: name, Usage: []string{nodeInfoUsage}})
		}
		return selection(e.ID, source.KindNode)
	}
	return invalid(DomainNode)
}

func (in *Interpreter) topic(ctx context.Context, args []string) Result {
	if len(args) == 0 {
		return incomplete(DomainTopic)
	}
	switch {
	case args[0] == "list":
		return list(DomainTopic)
	case args[0] == "echo" && len(args) >= 2:
		name := strings.Join(args[1:], " ")
		e, res, ok := in.lookup(ctx, source.KindTopic, name)
		if !ok {
			return res
		}
		if e == nil {
			return failure(Failure{Message: "Topic not found", Subject: name, Usage: []string{topicEchoUsage}})
		}
		return selection(e.ID, source.KindTopic)
	case args[0] == "pub" && len(args) >= 3:
		name := args[1]
		e, res, ok := in.lookup(ctx, source.KindTopic, name)
		if !ok {
			return res
		}
		if e == nil {
			return failure(Failure{Message: "Topic not found", Subject: name, Usage: []string{topicPubUsage}})
		}
		in.send(ctx, e.ID, strings.Join(args[2:], " "))
		return selection(e.ID, source.KindTopic)
	}
	return invalid(DomainTopic)
}

func (in *Interpreter) pkg(ctx context.Context, args []string) Result {
	if len(args) == 0 {
		return incomplete(DomainPackage)
	}
	switch {
	case args[0] == "list":
		return list(DomainPackage)
	case args[0] == "contents" && len(args) >= 2:
		name := strings.Join(args[1:], " ")
		e, res, ok := in.lookup(ctx, source.KindPackage, name)
		if !ok {
			return res
		}
		if e == nil {
			return failure(Failure{Message: "Package not found", Subject: name, Usage: []string{pkgContentsUsage}})
		}
		return selection(e.ID, source.KindPackage)
	}
	return invalid(DomainPackage)
}

func (in *Interpreter) service(ctx context.Context, args []string) Result {
	if len(args) == 0 {
		return incomplete(DomainService)
	}
	switch {
	case args[0] == "list":
		return list(DomainService)
	case args[0] == "show" && len(args) >= 2:
		name := strings.Join(args[1:], " ")
		e, err := in.resolveService(ctx, name)
		if err != nil {
			return fetchFailure(source.KindNode, err)
		}
		if e == nil {
			return serviceNotFound(name, []string{serviceShowUsage})
		}
		return selection(e.ID, source.KindService)
	case args[0] == "call" && len(args) >= 2:
		return in.call(ctx, args[1:])
	}
	return invalid(DomainService)
}

// lookup resolves name in the directory of kind. ok is false when the
// directory could not be fetched, in which case res holds the error result.
func (in *Interpreter) lookup(ctx context.Context, kind source.Kind, name string) (*source.Entry, Result, bool) {
	entries, err := in.env.Directory(ctx, kind)
	if err != nil {
		in.log.Warn("directory fetch failed", zap.Stringer("kind", kind), zap.Error(err))
		return nil, fetchFailure(kind, err), false
	}
	e, found := resolve.Entry(name, entries)
	if !found {
		return nil, Result{}, true
	}
	return &e, Result{}, true
}

// resolveService looks the token up among referenced identities first and
// falls back to the whole node directory.
func (in *Interpreter) resolveService(ctx context.Context, token string) (*source.Entry, error) {
	nodes, err := in.env.Directory(ctx, source.KindNode)
	if err != nil {
		in.log.Warn("directory fetch failed", zap.Stringer("kind", source.KindNode), zap.Error(err))
		return nil, err
	}

	referenced := make([]source.Entry, 0)
	for _, id := range in.env.ReferencedIDs() {
		if e, ok := resolve.ByID(id, nodes); ok {
			referenced = append(referenced, e)
		}
	}
	if e, ok := resolve.Entry(token, referenced); ok {
		return &e, nil
	}
	if e, ok := resolve.Entry(token, nodes); ok {
		return &e, nil
	}
	return nil, nil
}

// send delivers text and swallows failures; the command outcome never
// depends on delivery.
func (in *Interpreter) send(ctx context.Context, channelID, text string) {
	if err := in.env.Send(ctx, channelID, text); err != nil {
		in.log.Warn("send failed", zap.String("channel", channelID), zap.Error(err))
	}
}

func serviceNotFound(name string, usage []string) Result {
	if name == "" {
		name = "<empty>"
	}
	return failure(Failure{Message: "Service not found", Subject: name, Usage: usage, Hint: servicesNote})
}
