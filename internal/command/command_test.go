package command

import (
	"context"
	"errors"
	"testing"

	"github.com/avitaltamir/rostui/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memEnv adapts a Memory provider to Env with a fixed referenced set.
type memEnv struct {
	mem        *source.Memory
	referenced []string
}

func (e *memEnv) Directory(ctx context.Context, kind source.Kind) ([]source.Entry, error) {
	return e.mem.FetchDirectory(ctx, kind)
}

func (e *memEnv) Send(ctx context.Context, channelID, text string) error {
	return e.mem.SendText(ctx, channelID, text)
}

func (e *memEnv) ReferencedIDs() []string {
	return e.referenced
}

func newEnv() *memEnv {
	mem := source.NewMemory().
		SetDirectory(source.KindNode,
			source.Entry{ID: "1", DisplayName: "Alice"},
			source.Entry{ID: "2", DisplayName: "Bob"},
		).
		SetDirectory(source.KindTopic,
			source.Entry{ID: "random", DisplayName: "random"},
			source.Entry{ID: "general", DisplayName: "general"},
			source.Entry{ID: "dev", DisplayName: "dev-talk"},
		).
		SetDirectory(source.KindPackage,
			source.Entry{ID: "r1", DisplayName: "moderators"},
		)
	return &memEnv{mem: mem}
}

func exec(t *testing.T, env *memEnv, line string) Result {
	t.Helper()
	return New(env, nil).Execute(context.Background(), line)
}

func TestHelp(t *testing.T) {
	for _, line := range []string{"help", "ros2 help"} {
		res := exec(t, newEnv(), line)
		assert.Equal(t, KindHelp, res.Kind, line)
		assert.Len(t, res.Help, 4)
		assert.Equal(t, helpNote, res.HelpNote)
	}
}

func TestCommandNotFound(t *testing.T) {
	res := exec(t, newEnv(), "foo bar")

	require.Equal(t, KindError, res.Kind)
	assert.Equal(t, "Command not found", res.Failure.Message)
	assert.Equal(t, "foo", res.Failure.Subject)
	assert.Contains(t, res.Failure.Error(), "not found")
}

func TestCommandNotFoundHint(t *testing.T) {
	res := exec(t, newEnv(), "hlep")
	require.Equal(t, KindError, res.Kind)
	assert.Contains(t, res.Failure.Hint, `Did you mean "help"?`)

	res = exec(t, newEnv(), "zzzzzzzz")
	assert.NotContains(t, res.Failure.Hint, "Did you mean")
}

func TestUnknownSubcommand(t *testing.T) {
	res := exec(t, newEnv(), "ros2 nodes list")
	require.Equal(t, KindError, res.Kind)
	assert.Equal(t, "Unknown ros2 subcommand", res.Failure.Message)
	assert.Equal(t, "nodes", res.Failure.Subject)
	assert.Contains(t, res.Failure.Hint, `"node"`)
}

func TestBareRos2IsNotFound(t *testing.T) {
	res := exec(t, newEnv(), "ros2")
	require.Equal(t, KindError, res.Kind)
	assert.Equal(t, "Command not found", res.Failure.Message)
}

func TestList(t *testing.T) {
	tests := []struct {
		line   string
		domain Domain
	}{
		{"ros2 node list", DomainNode},
		{"ros2 topic list", DomainTopic},
		{"ros2 pkg list", DomainPackage},
		{"ros2 service list", DomainService},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res := exec(t, newEnv(), tt.line)
			assert.Equal(t, KindList, res.Kind)
			assert.Equal(t, tt.domain, res.Domain)
		})
	}
}

func TestIncompleteAndInvalid(t *testing.T) {
	tests := []struct {
		line    string
		message string
	}{
		{"ros2 node", "Incomplete node command."},
		{"ros2 topic", "Incomplete topic command."},
		{"ros2 pkg", "Incomplete pkg command."},
		{"ros2 service", "Incomplete service command."},
		{"ros2 node kill 1", "Invalid node command."},
		{"ros2 node info", "Invalid node command."},
		{"ros2 topic pub general", "Invalid topic command."},
		{"ros2 pkg contents", "Invalid pkg command."},
		{"ros2 service call", "Invalid service command."},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res := exec(t, newEnv(), tt.line)
			require.Equal(t, KindError, res.Kind)
			assert.Equal(t, tt.message, res.Failure.Message)
			assert.NotEmpty(t, res.Failure.Usage)
		})
	}
}

func TestNodeInfo(t *testing.T) {
	res := exec(t, newEnv(), "ros2 node info ali")
	require.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, Selection{ID: "1", Kind: source.KindNode}, res.Selection)

	res = exec(t, newEnv(), "ros2 node info carol")
	require.Equal(t, KindError, res.Kind)
	assert.Equal(t, "Node not found", res.Failure.Message)
	assert.Equal(t, "carol", res.Failure.Subject)
}

func TestTopicEchoJoinsName(t *testing.T) {
	env := newEnv()
	env.mem.SetDirectory(source.KindTopic, source.Entry{ID: "t9", DisplayName: "off topic"})

	res := exec(t, env, "ros2 topic echo off topic")
	require.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, Selection{ID: "t9", Kind: source.KindTopic}, res.Selection)
}

func TestTopicPub(t *testing.T) {
	env := newEnv()
	res := exec(t, env, "ros2 topic pub dev hello   world")

	require.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, Selection{ID: "dev", Kind: source.KindTopic}, res.Selection)
	assert.Equal(t, []source.Sent{{ChannelID: "dev", Text: "hello world"}}, env.mem.Sent())
}

func TestTopicPubSendFailureIsSwallowed(t *testing.T) {
	env := newEnv()
	env.mem.FailSend = errors.New("forbidden")

	res := exec(t, env, "ros2 topic pub dev hi")
	require.Equal(t, KindSelection, res.Kind)
	assert.Empty(t, env.mem.Sent())
}

func TestPkgContents(t *testing.T) {
	res := exec(t, newEnv(), "ros2 pkg contents MOD")
	require.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, Selection{ID: "r1", Kind: source.KindPackage}, res.Selection)
}

func TestServiceShow(t *testing.T) {
	env := newEnv()
	env.mem.SetDirectory(source.KindNode,
		source.Entry{ID: "1", DisplayName: "Bobby"},
		source.Entry{ID: "2", DisplayName: "Bob"},
	)

	// referenced identities are searched first
	env.referenced = []string{"2"}
	res := exec(t, env, "ros2 service show bob")
	require.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, Selection{ID: "2", Kind: source.KindService}, res.Selection)

	// then the node directory
	env.referenced = nil
	res = exec(t, env, "ros2 service show bob")
	require.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, "1", res.Selection.ID)

	res = exec(t, env, "ros2 service show nobody")
	require.Equal(t, KindError, res.Kind)
	assert.Equal(t, servicesNote, res.Failure.Hint)
}

func TestServiceCall(t *testing.T) {
	env := newEnv()
	env.referenced = []string{"2"}

	res := exec(t, env, "ros2 service call bob -m hello there -c general")

	require.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, Selection{ID: "2", Kind: source.KindService}, res.Selection)
	assert.Equal(t, []source.Sent{{ChannelID: "general", Text: "<@2> hello there"}}, env.mem.Sent())
}

func TestServiceCallChannelFallbacks(t *testing.T) {
	t.Run("defaults to general", func(t *testing.T) {
		env := newEnv()
		exec(t, env, "ros2 service call alice")
		assert.Equal(t, []source.Sent{{ChannelID: "general", Text: "<@1>"}}, env.mem.Sent())
	})

	t.Run("explicit channel by substring", func(t *testing.T) {
		env := newEnv()
		exec(t, env, "ros2 service call alice --channel TALK --message hi")
		assert.Equal(t, []source.Sent{{ChannelID: "dev", Text: "<@1> hi"}}, env.mem.Sent())
	})

	t.Run("first channel without general", func(t *testing.T) {
		env := newEnv()
		env.mem.SetDirectory(source.KindTopic,
			source.Entry{ID: "a", DisplayName: "announcements"},
			source.Entry{ID: "b", DisplayName: "general-chat"},
		)
		exec(t, env, "ros2 service call alice")
		assert.Equal(t, []source.Sent{{ChannelID: "a", Text: "<@1>"}}, env.mem.Sent())
	})

	t.Run("no channel skips the send", func(t *testing.T) {
		env := newEnv()
		env.mem.SetDirectory(source.KindTopic)
		res := exec(t, env, "ros2 service call alice -m hi")
		assert.Equal(t, KindSelection, res.Kind)
		assert.Empty(t, env.mem.Sent())
	})
}

func TestServiceCallServiceFlagOverrides(t *testing.T) {
	env := newEnv()
	res := exec(t, env, "ros2 service call alice -s 2")
	require.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, "2", res.Selection.ID)
}

func TestServiceCallErrors(t *testing.T) {
	tests := []struct {
		line    string
		message string
		subject string
	}{
		{"ros2 service call bob -x", "Invalid flag(s)", "-x"},
		{"ros2 service call bob -m", "Invalid flag(s)", "-m"},
		{"ros2 service call bob -c -m hi", "Invalid flag(s)", "-c"},
		{"ros2 service call bob -s", "Invalid flag(s)", "-s"},
		{"ros2 service call -m hi", "Missing service identifier.", ""},
		{"ros2 service call carol", "Service not found", "carol"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			env := newEnv()
			res := exec(t, env, tt.line)
			require.Equal(t, KindError, res.Kind)
			assert.Equal(t, tt.message, res.Failure.Message)
			assert.Equal(t, tt.subject, res.Failure.Subject)
			assert.Empty(t, env.mem.Sent())
		})
	}
}

func TestParseCallArgs(t *testing.T) {
	got := parseCallArgs([]string{"big", "bob", "--message", "a", "b", "-c", "dev", "-q", "-s"})
	assert.Equal(t, "big bob", got.service)
	assert.Equal(t, "a b", got.message)
	assert.Equal(t, "dev", got.channel)
	assert.Equal(t, []string{"-q", "-s"}, got.invalid)
}

func TestFetchFailure(t *testing.T) {
	env := newEnv()
	env.mem.FailFetch = errors.New("gateway down")

	res := exec(t, env, "ros2 node info ali")
	require.Equal(t, KindError, res.Kind)
	assert.Equal(t, "Could not load nodes", res.Failure.Message)
	assert.Equal(t, "gateway down", res.Failure.Subject)
}

func TestResultLines(t *testing.T) {
	lines := exec(t, newEnv(), "ros2 pkg").Lines()
	assert.Equal(t, "Incomplete pkg command.", lines[0])
	assert.Equal(t, "Usage:", lines[1])

	assert.Equal(t, []string{"Listing topics"}, list(DomainTopic).Lines())
	assert.Equal(t, "Available commands:", Help().Lines()[0])
}
