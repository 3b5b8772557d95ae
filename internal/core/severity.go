package core

import (
	"fmt"
	"strings"
)

type Level int

const (
	// Ignore means the rule does not apply
	Ignore Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Ignore:
		return "IGNORE"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	}
	panic(fmt.Sprintf("unreachable: level %d", int(l)))
}

// ParseLevel is the reverse of Level.String (case-insensitive).
func ParseLevel(value string) (Level, error) {
	switch strings.ToUpper(value) {
	case "IGNORE":
		return Ignore, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	}
	return Ignore, fmt.Errorf("unknown level %q", value)
}

type RuleCode string

const (
	DisallowedLinkCard      RuleCode = "disallowed-link-card"
	NoLinkComment           RuleCode = "no-link-comment"
	V1LinkCard              RuleCode = "v1-link-card"
	InvalidMOC              RuleCode = "invalid-moc"
	V1DateFooter            RuleCode = "v1-date-footer"
	UnresolvedLink          RuleCode = "unresolved-link"
	LinkEndsWithParenthesis RuleCode = "link-ends-with-parenthesis"
	DisallowedFixme         RuleCode = "disallowed-fixme"

	NoDescription RuleCode = "no-description"
	NoCover       RuleCode = "no-cover"
	NoURL         RuleCode = "no-url"
	NoStatus      RuleCode = "no-status"
)

// ContentRuleCodes lists the rules of the content linter in evaluation order.
var ContentRuleCodes = []RuleCode{
	DisallowedLinkCard,
	NoLinkComment,
	V1LinkCard,
	InvalidMOC,
	V1DateFooter,
	UnresolvedLink,
	LinkEndsWithParenthesis,
	DisallowedFixme,
}

// PropertyRuleCodes lists the rules of the property linter in evaluation order.
var PropertyRuleCodes = []RuleCode{
	NoDescription,
	NoCover,
	NoURL,
	NoStatus,
}

// RuleCodes lists every known rule.
func RuleCodes() []RuleCode {
	var codes []RuleCode
	codes = append(codes, ContentRuleCodes...)
	codes = append(codes, PropertyRuleCodes...)
	return codes
}

// Severity returns the level of a rule for a note type.
//
// Every rule declares a level for every note type. There is no default case:
// an unknown pair panics so that adding a note type or a rule without
// updating these tables is caught by the tests.
func Severity(rule RuleCode, noteType NoteTypeName) Level {
	switch rule {
	case DisallowedLinkCard:
		return disallowedLinkCardSeverity(noteType)
	case NoLinkComment:
		return noLinkCommentSeverity(noteType)
	case V1LinkCard:
		return v1LinkCardSeverity(noteType)
	case InvalidMOC:
		return invalidMOCSeverity(noteType)
	case V1DateFooter:
		return v1DateFooterSeverity(noteType)
	case UnresolvedLink:
		return unresolvedLinkSeverity(noteType)
	case LinkEndsWithParenthesis:
		return linkEndsWithParenthesisSeverity(noteType)
	case DisallowedFixme:
		return disallowedFixmeSeverity(noteType)
	case NoDescription:
		return noDescriptionSeverity(noteType)
	case NoCover:
		return noCoverSeverity(noteType)
	case NoURL:
		return noURLSeverity(noteType)
	case NoStatus:
		return noStatusSeverity(noteType)
	}
	panic(fmt.Sprintf("unreachable: unknown rule %q", rule))
}

func unreachable(rule RuleCode, noteType NoteTypeName) string {
	return fmt.Sprintf("unreachable: no severity for rule %q and note type %q", rule, noteType)
}

func disallowedLinkCardSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Glossary, Procedure, Troubleshooting:
		return Error
	case Hub, Activity, Report, Article, DailyNote, WeeklyReport, Titled, Fallback:
		return Ignore
	}
	panic(unreachable(DisallowedLinkCard, noteType))
}

func noLinkCommentSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Article, WeeklyReport:
		return Warn
	case Report, Hub, Activity:
		return Info
	case Glossary, Procedure, Troubleshooting, DailyNote, Titled, Fallback:
		return Ignore
	}
	panic(unreachable(NoLinkComment, noteType))
}

func v1LinkCardSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Glossary, Procedure, Hub, Activity, Troubleshooting, Report, Article, WeeklyReport, Titled:
		return Error
	case DailyNote:
		return Warn
	case Fallback:
		return Info
	}
	panic(unreachable(V1LinkCard, noteType))
}

func invalidMOCSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Hub:
		return Error
	case Glossary, Procedure, Activity, Troubleshooting:
		return Warn
	case Report, Article, DailyNote, WeeklyReport, Titled, Fallback:
		return Ignore
	}
	panic(unreachable(InvalidMOC, noteType))
}

func v1DateFooterSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Glossary, Procedure, Hub, Activity, Troubleshooting, Report, Article, Titled:
		return Warn
	case Fallback:
		return Info
	case DailyNote, WeeklyReport:
		return Ignore
	}
	panic(unreachable(V1DateFooter, noteType))
}

func unresolvedLinkSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Article:
		return Error
	case Glossary, Procedure, Hub, Activity, Troubleshooting, Report, WeeklyReport:
		return Warn
	case Titled:
		return Info
	case DailyNote, Fallback:
		return Ignore
	}
	panic(unreachable(UnresolvedLink, noteType))
}

func linkEndsWithParenthesisSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Glossary, Procedure, Hub, Activity, Troubleshooting, Report, Article, WeeklyReport, Titled:
		return Error
	case DailyNote, Fallback:
		return Warn
	}
	panic(unreachable(LinkEndsWithParenthesis, noteType))
}

func disallowedFixmeSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Article, Report, WeeklyReport:
		return Error
	case Hub, Glossary, Procedure, Activity, Troubleshooting, Titled:
		return Warn
	case Fallback:
		return Info
	case DailyNote:
		return Ignore
	}
	panic(unreachable(DisallowedFixme, noteType))
}

func noDescriptionSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Glossary, Procedure, Hub, Troubleshooting, Report, Article, WeeklyReport:
		return Error
	case Activity, Titled:
		return Warn
	case DailyNote, Fallback:
		return Ignore
	}
	panic(unreachable(NoDescription, noteType))
}

func noCoverSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Glossary, Procedure, Hub, Activity, Troubleshooting, Report, Article:
		return Error
	case DailyNote, WeeklyReport, Titled, Fallback:
		return Ignore
	}
	panic(unreachable(NoCover, noteType))
}

func noURLSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Article:
		return Error
	case Glossary:
		return Warn
	case Procedure, Hub, Activity, Troubleshooting, Report, DailyNote, WeeklyReport, Titled, Fallback:
		return Ignore
	}
	panic(unreachable(NoURL, noteType))
}

func noStatusSeverity(noteType NoteTypeName) Level {
	switch noteType {
	case Troubleshooting:
		return Error
	case Activity, Report:
		return Warn
	case Glossary, Procedure, Hub, Article, DailyNote, WeeklyReport, Titled, Fallback:
		return Ignore
	}
	panic(unreachable(NoStatus, noteType))
}
