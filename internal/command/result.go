package command

import "github.com/avitaltamir/rostui/internal/source"

// ResultKind distinguishes the outcomes of a command.
type ResultKind int

const (
	KindError ResultKind = iota
	KindList
	KindSelection
	KindHelp
)

// String returns the kind name for logs.
func (k ResultKind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindSelection:
		return "selection"
	case KindHelp:
		return "help"
	default:
		return "error"
	}
}

// Domain is a ros2 command group.
type Domain int

const (
	DomainNode Domain = iota
	DomainTopic
	DomainPackage
	DomainService
)

// Domains lists the groups in help order.
var Domains = []Domain{DomainNode, DomainTopic, DomainPackage, DomainService}

// Keyword returns the token that selects the domain after "ros2".
func (d Domain) Keyword() string {
	switch d {
	case DomainTopic:
		return "topic"
	case DomainPackage:
		return "pkg"
	case DomainService:
		return "service"
	default:
		return "node"
	}
}

// Kind returns the entity kind the domain lists.
func (d Domain) Kind() source.Kind {
	switch d {
	case DomainTopic:
		return source.KindTopic
	case DomainPackage:
		return source.KindPackage
	case DomainService:
		return source.KindService
	default:
		return source.KindNode
	}
}

// Selection names one entity chosen by a command or a pane.
type Selection struct {
	ID   string
	Kind source.Kind
}

// Failure describes a user input error.
type Failure struct {
	Message string
	// Subject is the offending token, rendered highlighted after Message
	Subject string
	Usage   []string
	Hint    string
}

// Error implements error.
func (f Failure) Error() string {
	if f.Subject == "" {
		return f.Message
	}
	return f.Message + ": " + f.Subject
}

// Section is one titled block of help text.
type Section struct {
	Title string
	Lines []string
}

// Result is the typed outcome of executing one command line.
type Result struct {
	Kind      ResultKind
	Domain    Domain
	Selection Selection
	Failure   Failure
	Help      []Section
	HelpNote  string
}

// Lines renders the result as plain text lines.
func (r Result) Lines() []string {
	switch r.Kind {
	case KindHelp:
		lines := []string{"Available commands:", ""}
		for _, s := range r.Help {
			lines = append(lines, s.Title+":")
			lines = append(lines, s.Lines...)
			lines = append(lines, "")
		}
		if r.HelpNote != "" {
			lines = append(lines, r.HelpNote)
		}
		return lines
	case KindError:
		lines := []string{r.Failure.Error()}
		if len(r.Failure.Usage) > 0 {
			lines = append(lines, "Usage:")
			lines = append(lines, r.Failure.Usage...)
		}
		if r.Failure.Hint != "" {
			lines = append(lines, r.Failure.Hint)
		}
		return lines
	case KindList:
		return []string{"Listing " + r.Domain.Kind().String() + "s"}
	default:
		return []string{"Command executed successfully."}
	}
}

func selection(id string, kind source.Kind) Result {
	return Result{Kind: KindSelection, Selection: Selection{ID: id, Kind: kind}}
}

func list(d Domain) Result {
	return Result{Kind: KindList, Domain: d}
}

func failure(f Failure) Result {
	return Result{Kind: KindError, Failure: f}
}
