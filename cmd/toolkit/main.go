package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/raywall/fast-json-api/pkg/config"
	"github.com/raywall/fast-json-api/pkg/models"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd monta a árvore de comandos. Cada chamada devolve comandos novos
// para que os testes não compartilhem estado de flags.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "toolkit",
		Short:        "Utilitários do fast-json-api",
		SilenceUsage: true,
	}

	root.AddCommand(newValidateCmd(), newModelsCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Valida um arquivo de configuração",
		Long: `Carrega o arquivo com as mesmas camadas do servidor (defaults, YAML e
ambiente) e reporta a configuração efetiva.

Com OUTPUT_FORMAT=json a configuração é impressa em JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "caminho do arquivo YAML de configuração (obrigatório)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Analisando configuração: %s ...\n", path)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("erro de carregamento/estrutura: %w", err)
	}

	// Output JSON para integração com pipelines de CI
	if os.Getenv("OUTPUT_FORMAT") == "json" {
		jsonOutput, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(jsonOutput))
		return nil
	}

	fmt.Fprintf(out, "Configuração válida: runtime=%s prefixo=%s endereço=%s\n", cfg.Runtime, cfg.APIPrefix, cfg.Addr())
	return nil
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Lista os modelos registrados",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range models.Default().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
