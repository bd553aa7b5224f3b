package puml

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/viant/umldiff/diagram"
)

const (
	name     = `(?:"([^"]+)"|([\w$]+(?:\.[\w$]+)*))`
	heads    = `(?:<\||<|\*|o|#|x|\+|\^|\})`
	tails    = `(?:\|>|>|\*|o|#|x|\+|\^|\{)`
	body     = `[-.]+(?:(?:\[[^\]]*\]|up|down|left|right|l|r|u|d)[-.]+)?`
	quoted   = `(?:"[^"]*"\s*)?`
	keywords = `abstract\s+class|abstract|class|interface|enum|actor|component|entity|annotation|protocol|struct|exception`
)

var (
	declarationExpr  = regexp.MustCompile(`^(` + keywords + `)\s+` + name + `(?:\s+as\s+` + name + `)?(.*)$`)
	relationshipExpr = regexp.MustCompile(`^` + name + `\s*` + quoted + `(` + heads + `?` + body + tails + `?)\s*` + quoted + name + `\s*(?::\s*(.*))?$`)
	memberExpr       = regexp.MustCompile(`^` + name + `\s*:\s*(.+)$`)
	stereotypeExpr   = regexp.MustCompile(`<<[^>]*>>`)
	separatorExpr    = regexp.MustCompile(`^(?:-{2,}|\.{2,}|={2,}|_{2,})(?:.*(?:-{2,}|\.{2,}|={2,}|_{2,}))?$`)
	directives       = []string{"skinparam", "title", "hide", "show", "left to right", "top to bottom", "legend", "header", "footer", "caption", "scale", "package", "namespace", "together", "set"}
)

// Parser converts PlantUML class diagram text into a raw document
type Parser struct {
	doc     *diagram.Document
	aliases map[string]*diagram.Entity
	current *diagram.Entity
	last    *diagram.Entity // declared without body, a following lone "{" opens it
	inNote  bool
}

// NewParser creates PlantUML parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses PlantUML source
func (p *Parser) Parse(src []byte) (*diagram.Document, error) {
	p.doc = &diagram.Document{}
	p.aliases = map[string]*diagram.Entity{}
	p.current = nil
	p.last = nil
	p.inNote = false
	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.parseLine(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

func (p *Parser) parseLine(line string) {
	if line == "" || strings.HasPrefix(line, "'") {
		return
	}
	if p.inNote {
		if strings.HasPrefix(strings.ToLower(line), "end note") || strings.HasPrefix(strings.ToLower(line), "endnote") {
			p.inNote = false
		}
		return
	}
	if p.current != nil {
		p.parseMember(line)
		return
	}
	if line == "{" {
		p.current, p.last = p.last, nil
		return
	}
	p.last = nil
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "note ") {
		p.inNote = !strings.Contains(line, ":") && !strings.Contains(line, `"`)
		return
	}
	if line == "}" || line[0] == '@' || line[0] == '!' || isDirective(lower) {
		return
	}
	if matches := declarationExpr.FindStringSubmatch(line); len(matches) > 0 {
		p.parseDeclaration(matches)
		return
	}
	if matches := relationshipExpr.FindStringSubmatch(line); len(matches) > 0 {
		p.parseRelationship(matches)
		return
	}
	if matches := memberExpr.FindStringSubmatch(line); len(matches) > 0 {
		entity := p.declare(first(matches[1], matches[2]), "")
		addMember(entity, matches[3])
	}
}

func isDirective(lower string) bool {
	for _, directive := range directives {
		if lower == directive || strings.HasPrefix(lower, directive+" ") {
			return true
		}
	}
	return false
}

func (p *Parser) parseMember(line string) {
	if strings.HasPrefix(line, "}") {
		p.current = nil
		return
	}
	if separatorExpr.MatchString(line) {
		return
	}
	addMember(p.current, line)
}

func addMember(entity *diagram.Entity, member string) {
	member = strings.TrimSpace(member)
	if member == "" {
		return
	}
	if strings.Contains(member, "(") {
		entity.Methods = append(entity.Methods, member)
		return
	}
	entity.Attributes = append(entity.Attributes, member)
}

func (p *Parser) parseDeclaration(matches []string) {
	kind := strings.Join(strings.Fields(strings.ToLower(matches[1])), " ")
	if kind == "abstract class" {
		kind = diagram.KindAbstract
	}
	entityName := first(matches[2], matches[3])
	alias := first(matches[4], matches[5])
	if matches[3] != "" && matches[4] != "" {
		entityName, alias = matches[4], matches[3]
	}
	rest := stereotypeExpr.ReplaceAllString(matches[6], "")

	p.adopt(entityName, alias)
	entity := p.declare(entityName, kind)
	if alias != "" {
		entity.ID = alias
		p.aliases[alias] = entity
	}
	header := rest
	if open := strings.Index(header, "{"); open != -1 {
		header = header[:open]
	}
	relKind := ""
	for _, token := range strings.Fields(strings.ReplaceAll(header, ",", " ")) {
		switch token {
		case "extends":
			relKind = diagram.Inheritance
		case "implements":
			relKind = diagram.Implementation
		default:
			if relKind == "" {
				continue
			}
			p.declare(token, "")
			p.doc.AddRelation(&diagram.Relation{Source: p.ref(entity), Target: token, Kind: relKind, Directed: true})
		}
	}
	if open := strings.Index(rest, "{"); open != -1 {
		if strings.Contains(rest[open:], "}") {
			inline := strings.TrimSpace(rest[open+1 : strings.LastIndex(rest, "}")])
			for _, member := range strings.Split(inline, ";") {
				addMember(entity, member)
			}
			return
		}
		p.current = entity
		return
	}
	p.last = entity
}

func (p *Parser) parseRelationship(matches []string) {
	left := first(matches[1], matches[2])
	arrow := matches[3]
	right := first(matches[4], matches[5])
	label := strings.TrimSpace(strings.Trim(strings.TrimSpace(matches[6]), "<>"))
	p.declare(left, "")
	p.declare(right, "")

	relation := &diagram.Relation{Source: left, Target: right, Label: label}
	dotted := strings.Contains(arrow, ".")
	switch {
	case strings.HasPrefix(arrow, "<|"):
		relation.Kind, relation.Directed = inheritanceKind(dotted), true
		relation.Source, relation.Target = right, left
	case strings.HasSuffix(arrow, "|>"):
		relation.Kind, relation.Directed = inheritanceKind(dotted), true
	case strings.HasPrefix(arrow, "*"):
		relation.Kind, relation.Directed = diagram.Composition, true
	case strings.HasSuffix(arrow, "*"):
		relation.Kind, relation.Directed = diagram.Composition, true
		relation.Source, relation.Target = right, left
	case strings.HasPrefix(arrow, "o"):
		relation.Kind, relation.Directed = diagram.Aggregation, true
	case strings.HasSuffix(arrow, "o"):
		relation.Kind, relation.Directed = diagram.Aggregation, true
		relation.Source, relation.Target = right, left
	case strings.HasPrefix(arrow, "<") && strings.HasSuffix(arrow, ">"):
		relation.Kind = plainKind(dotted)
	case strings.HasSuffix(arrow, ">"):
		relation.Kind, relation.Directed = plainKind(dotted), true
	case strings.HasPrefix(arrow, "<"):
		relation.Kind, relation.Directed = plainKind(dotted), true
		relation.Source, relation.Target = right, left
	default:
		relation.Kind = plainKind(dotted)
	}
	p.doc.AddRelation(relation)
}

func inheritanceKind(dotted bool) string {
	if dotted {
		return diagram.Implementation
	}
	return diagram.Inheritance
}

func plainKind(dotted bool) string {
	if dotted {
		return diagram.Dependency
	}
	return diagram.Association
}

// declare returns entity referenced by name or alias, creating it when needed
func (p *Parser) declare(ref, kind string) *diagram.Entity {
	if entity, ok := p.aliases[ref]; ok {
		if kind != "" {
			entity.Kind = kind
		}
		return entity
	}
	entity := p.doc.AddEntity(&diagram.Entity{Name: ref})
	if kind != "" {
		entity.Kind = kind
	}
	return entity
}

// adopt reuses the placeholder a relationship created under alias before the aliased declaration
func (p *Parser) adopt(entityName, alias string) {
	if alias == "" || alias == entityName || p.aliases[alias] != nil {
		return
	}
	placeholder := p.doc.Entity(alias)
	if placeholder == nil {
		return
	}
	existing := p.doc.Entity(entityName)
	if existing == nil {
		placeholder.Name = entityName
		return
	}
	existing.Attributes = append(existing.Attributes, placeholder.Attributes...)
	existing.Methods = append(existing.Methods, placeholder.Methods...)
	entities := p.doc.Entities[:0]
	for _, entity := range p.doc.Entities {
		if entity != placeholder {
			entities = append(entities, entity)
		}
	}
	p.doc.Entities = entities
}

func (p *Parser) ref(entity *diagram.Entity) string {
	if entity.ID != "" {
		return entity.ID
	}
	return entity.Name
}

func first(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
