// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	FileNotFoundId Id = iota + 1
	PermissionDeniedId
	IsDirectoryId
	ReadFailedId
	ConfigLoadFailedId
	ScriptParseErrorId
	ScriptExecutionFailedId
	CommandNotFoundId
	InvalidUsageId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue's markdown with the named glamour style
// ("auto", "dark", "light", "notty", or a path to a style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also:\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# Input file not found!

One of the files on the command line does not exist. The other files were
still processed.

## Things you can try:
- Check the spelling of the file name
- Relative names are resolved against the current directory
- Use '-' to read standard input`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

A file could not be opened because you lack permission to read it.

## Things you can try:
- Check the file permissions:
~~~
$ ls -l <file>
~~~
- Run from an account that can read the file`,
	}

	isDirectoryIssue = &Issue{
		id: IsDirectoryId,
		mdMsg: `
# A directory was given instead of a file!

The line utilities read regular files and standard input only.

## Things you can try:
- Pass the files inside the directory instead:
~~~
$ linetools wc dir/*
~~~`,
	}

	readFailedIssue = &Issue{
		id: ReadFailedId,
		mdMsg: `
# Failed while reading input!

A file was opened but reading it failed midway. No partial counts were
printed for the invocation.

## Common causes:
- The file lives on a removed or unreachable device
- The input was a pipe whose writer failed

## Things you can try:
- Copy the file locally and retry
- Rerun with '--verbose' to see the full error chain`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.
Defaults were used instead.

## Things you can try:
- Print the location of the configuration file:
~~~
$ linetools config path
~~~
- Write a fresh file with the defaults:
~~~
$ linetools config init
~~~

## Example config.cue:
~~~cue
ui: {
	color_scheme: "auto"
	verbose:      false
}
head: lines: 10
shell: {
	enable_builtins:     true
	allow_host_commands: true
}
~~~`,
	}

	scriptParseErrorIssue = &Issue{
		id: ScriptParseErrorId,
		mdMsg: `
# Failed to parse script!

The script is not valid POSIX shell.

## Things you can try:
- Check the line and column shown in the error
- Quote arguments that contain shell metacharacters`,
	}

	scriptExecutionFailedIssue = &Issue{
		id: ScriptExecutionFailedId,
		mdMsg: `
# Script execution failed!

The script finished with a non-zero exit status, or the embedded shell
stopped before the script finished.

## Things you can try:
- Read the diagnostics the failing command printed above
- Check the status of each step with 'echo $?'
- Run the failing command on its own:
~~~
$ linetools sh -c 'wc -l file.txt'
~~~`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The script called a command that is neither a shell builtin nor one of
the line utilities, and host commands are disabled.

## Things you can try:
- Enable host commands in your configuration:
~~~cue
shell: allow_host_commands: true
~~~
- Use one of the bundled utilities: wc, cat, head, uniq, echo`,
	}

	invalidUsageIssue = &Issue{
		id: InvalidUsageId,
		mdMsg: `
# Invalid usage!

The flags or arguments given to the command are not valid.

## Things you can try:
- Show the command help:
~~~
$ linetools <command> --help
~~~`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():          fileNotFoundIssue,
		permissionDeniedIssue.Id():      permissionDeniedIssue,
		isDirectoryIssue.Id():           isDirectoryIssue,
		readFailedIssue.Id():            readFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		scriptParseErrorIssue.Id():      scriptParseErrorIssue,
		scriptExecutionFailedIssue.Id(): scriptExecutionFailedIssue,
		commandNotFoundIssue.Id():       commandNotFoundIssue,
		invalidUsageIssue.Id():          invalidUsageIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
