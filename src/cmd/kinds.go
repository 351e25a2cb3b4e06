package cmd

import (
	"fmt"
	"io"
	"simassert/src/usererrors"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type kindsArgs struct {
	Output string `help:"table, json or yaml" default:"table" enum:"table,json,yaml"`
}

type kindInfo struct {
	Name     string `json:"name" yaml:"name"`
	Template string `json:"template" yaml:"template"`
}

func RunKinds(args *kindsArgs, out io.Writer) error {
	infos := []kindInfo{}
	for _, kind := range usererrors.Kinds() {
		infos = append(infos, kindInfo{
			Name:     kind.String(),
			Template: kind.Template(),
		})
	}

	var outputData string
	switch strings.TrimSpace(args.Output) {
	case "table":
		outputData = kindsToTable(infos) + "\n"
	case "json":
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		outputData = string(data) + "\n"
	case "yaml":
		data, err := yaml.Marshal(infos)
		if err != nil {
			return err
		}
		outputData = string(data)
	default:
		return fmt.Errorf("invalid output format '%s'", args.Output)
	}

	_, err := io.WriteString(out, outputData)
	return err
}

func kindsToTable(infos []kindInfo) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Classification", "Template"})
	for index, info := range infos {
		t.AppendRow(table.Row{index, info.Name, info.Template})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	return t.Render()
}
