// Package hclcatalog reads service definitions from an HCL file.
//
// Each service is one block:
//
//	service "Compute" {
//	  unit  = "hour"
//	  tiers = [0, 50, 1000, 8000]
//	  rates = [0.62, 0.58, 0.55, 0.52]
//	}
//
// Bad blocks are reported per record and skipped, like the tabular
// reader: good blocks still load.
package hclcatalog

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"icsc/core/catalog"
	"icsc/internal/errors"
)

var serviceSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "service", LabelNames: []string{"name"}},
	},
}

// Parse extracts raw service records from HCL source. File-level syntax
// errors fail the whole input; block-level problems are per-record.
func Parse(src []byte, filename string) ([]catalog.Raw, []catalog.RecordError) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, []catalog.RecordError{{
			Index: 0,
			Err:   errors.MalformedRecord("invalid HCL syntax", diags),
		}}
	}

	content, _, _ := file.Body.PartialContent(serviceSchema)

	var records []catalog.Raw
	var rejected []catalog.RecordError

	for i, block := range content.Blocks {
		index := i + 1
		rec, err := parseBlock(index, block)
		if err != nil {
			rejected = append(rejected, catalog.RecordError{Index: index, Name: rec.Name, Err: err})
			continue
		}
		records = append(records, rec)
	}

	return records, rejected
}

// ReadFile reads service records from an HCL file on disk
func ReadFile(path string) ([]catalog.Raw, []catalog.RecordError, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	records, rejected := Parse(src, path)
	return records, rejected, nil
}

func parseBlock(index int, block *hcl.Block) (catalog.Raw, error) {
	rec := catalog.Raw{Index: index, Name: block.Labels[0]}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return rec, errors.MalformedRecord(
			fmt.Sprintf("record %d (%s): invalid attributes", index, rec.Name), diags).
			WithContext("record", index)
	}

	unit, err := stringAttr(attrs, "unit")
	if err != nil {
		return rec, errors.MalformedRecord(
			fmt.Sprintf("record %d (%s): bad unit", index, rec.Name), err).
			WithContext("record", index).
			WithContext("field", "unit")
	}
	rec.Unit = unit

	tiers, err := numberListAttr(attrs, "tiers")
	if err != nil {
		return rec, errors.MalformedRecord(
			fmt.Sprintf("record %d (%s): bad tiers", index, rec.Name), err).
			WithContext("record", index).
			WithContext("field", "tiers")
	}
	rec.Tiers = tiers

	rates, err := numberListAttr(attrs, "rates")
	if err != nil {
		return rec, errors.MalformedRecord(
			fmt.Sprintf("record %d (%s): bad rates", index, rec.Name), err).
			WithContext("record", index).
			WithContext("field", "rates")
	}
	rec.Rates = rates

	return rec, nil
}

func stringAttr(attrs hcl.Attributes, name string) (string, error) {
	attr, ok := attrs[name]
	if !ok {
		return "", fmt.Errorf("attribute %q is required", name)
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("attribute %q must be a string", name)
	}
	return val.AsString(), nil
}

func numberListAttr(attrs hcl.Attributes, name string) ([]float64, error) {
	attr, ok := attrs[name]
	if !ok {
		return nil, fmt.Errorf("attribute %q is required", name)
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("attribute %q must be a list of numbers", name)
	}

	var out []float64
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.Number {
			return nil, fmt.Errorf("attribute %q must contain only numbers", name)
		}
		f, _ := elem.AsBigFloat().Float64()
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("attribute %q must not be empty", name)
	}
	return out, nil
}
