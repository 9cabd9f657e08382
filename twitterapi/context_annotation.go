package twitterapi

type ContextDomain struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description Optional[string] `json:"description"`
}

type ContextEntity struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description Optional[string] `json:"description"`
}

// ContextAnnotation pairs a topic domain with an entity. Either side can be
// missing on its own.
type ContextAnnotation struct {
	Domain Optional[ContextDomain] `json:"domain"`
	Entity Optional[ContextEntity] `json:"entity"`
}

func ParseContextAnnotation(raw []byte) (ContextAnnotation, error) {
	var a ContextAnnotation
	var err error
	if a.Domain, err = readOptional(raw, asObject(ParseContextDomain), "domain"); err != nil {
		return ContextAnnotation{}, err
	}
	if a.Entity, err = readOptional(raw, asObject(ParseContextEntity), "entity"); err != nil {
		return ContextAnnotation{}, err
	}
	return a, nil
}

func ParseContextDomain(raw []byte) (ContextDomain, error) {
	id, name, description, err := parseContextItem(raw)
	if err != nil {
		return ContextDomain{}, err
	}
	return ContextDomain{ID: id, Name: name, Description: description}, nil
}

func ParseContextEntity(raw []byte) (ContextEntity, error) {
	id, name, description, err := parseContextItem(raw)
	if err != nil {
		return ContextEntity{}, err
	}
	return ContextEntity{ID: id, Name: name, Description: description}, nil
}

func parseContextItem(raw []byte) (string, string, Optional[string], error) {
	id, err := readRequired(raw, asString, "id")
	if err != nil {
		return "", "", None[string](), err
	}
	name, err := readRequired(raw, asString, "name")
	if err != nil {
		return "", "", None[string](), err
	}
	description, err := readOptional(raw, asString, "description")
	if err != nil {
		return "", "", None[string](), err
	}
	return id, name, description, nil
}
