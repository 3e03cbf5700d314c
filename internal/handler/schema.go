package handler

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const profileSchemaFile = "schemas/profile.json"

// 各接口对应的请求体schema
const (
	schemaScore        = "score"
	schemaCompensation = "compensation"
	schemaMarketIntel  = "market_intel"
	schemaSuggest      = "suggest"
	schemaRewrite      = "rewrite"
	schemaTarget       = "target"
)

// validator 预编译的请求体schema
type validator struct {
	schemas map[string]*gojsonschema.Schema
}

func newValidator() (*validator, error) {
	profile, err := schemaFS.ReadFile(profileSchemaFile)
	if err != nil {
		return nil, err
	}

	v := &validator{schemas: make(map[string]*gojsonschema.Schema)}
	for _, name := range []string{schemaScore, schemaCompensation, schemaMarketIntel, schemaSuggest, schemaRewrite, schemaTarget} {
		data, err := schemaFS.ReadFile("schemas/" + name + ".json")
		if err != nil {
			return nil, err
		}
		sl := gojsonschema.NewSchemaLoader()
		if err := sl.AddSchemas(gojsonschema.NewBytesLoader(profile)); err != nil {
			return nil, fmt.Errorf("load profile schema: %w", err)
		}
		schema, err := sl.Compile(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", name, err)
		}
		v.schemas[name] = schema
	}
	return v, nil
}

// validate 返回校验失败的明细；body 不是合法JSON时返回 error
func (v *validator) validate(name string, body []byte) ([]string, error) {
	schema, ok := v.schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}
	if res.Valid() {
		return nil, nil
	}
	details := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		details = append(details, e.String())
	}
	return details, nil
}
