package cli

import (
	configcmd "github.com/footprint-tools/cmdtree/internal/actions/config"
	"github.com/footprint-tools/cmdtree/internal/actions/help"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

var (
	sessionArg = dispatchers.Required("session", dispatchers.TypeOf[domain.Session]()).
			Describe("an active session, by name or id")
	knownSessionArg = dispatchers.Required("session", dispatchers.TypeOf[domain.KnownSession]()).
			Describe("a session name, or the id of an offline one")
	namespaceArg = dispatchers.Required("namespace", dispatchers.TypeOf[domain.Namespace]()).
			Describe("a namespace name")
	configKeyArg = dispatchers.Required("key", dispatchers.TypeOf[configcmd.Key]()).
			Describe("a key from 'config list'")
	topicArg = dispatchers.Optional("command", dispatchers.TypeOf[help.Topic]()).
			Describe("the command to explain")
)
