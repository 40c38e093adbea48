package command

const (
	nodeInfoUsage     = "  ros2 node info <node_name_or_id>"
	topicEchoUsage    = "  ros2 topic echo <topic_name_or_id>"
	topicPubUsage     = "  ros2 topic pub <topic_name_or_id> <message>"
	pkgContentsUsage  = "  ros2 pkg contents <package_name_or_id>"
	serviceShowUsage  = "  ros2 service show <service_name_or_id>"
	servicesNote      = "(Services are users mentioned in recent messages)"
	helpNote          = "You can use IDs or names (partial matches work)."
	runHelpSuggestion = "Run help to see the list of available commands."
)

var domainHelp = map[Domain]Section{
	DomainNode: {
		Title: "Node commands",
		Lines: []string{
			"  ros2 node list",
			nodeInfoUsage,
		},
	},
	DomainTopic: {
		Title: "Topic commands",
		Lines: []string{
			"  ros2 topic list",
			topicEchoUsage,
			topicPubUsage,
		},
	},
	DomainPackage: {
		Title: "Package commands",
		Lines: []string{
			"  ros2 pkg list",
			pkgContentsUsage,
		},
	},
	DomainService: {
		Title: "Service commands",
		Lines: []string{
			"  ros2 service list",
			serviceShowUsage,
			"  ros2 service call <service_name_or_id>",
			"  Optional flags:",
			"  -m | --message: optional message",
			"  -c | --channel: optional channel (defaults to #general)",
			"  -s | --service: service name or id (overrides the positional one)",
		},
	},
}

// Usage returns the full usage block of a domain.
func Usage(d Domain) []string {
	return append([]string(nil), domainHelp[d].Lines...)
}

// Help returns the result of the help command.
func Help() Result {
	sections := make([]Section, 0, len(Domains))
	for _, d := range Domains {
		s := domainHelp[d]
		sections = append(sections, Section{Title: s.Title, Lines: Usage(d)})
	}
	return Result{Kind: KindHelp, Help: sections, HelpNote: helpNote}
}
