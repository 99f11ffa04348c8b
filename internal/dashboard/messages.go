package dashboard

import (
	"errors"
	"fmt"

	"fjacquet/count-dashboard/internal/loader"
	"fjacquet/count-dashboard/internal/parsererror"
)

// FatalMessage is shown, after any per-file messages, when no report can be built.
const FatalMessage = "Erro ao carregar os dados. Verifique os arquivos e tente novamente."

// ErrorMessages translates the load errors of res into user-facing messages, in order.
func ErrorMessages(res *loader.Result, referencePath string) []string {
	if res == nil {
		return nil
	}
	out := make([]string, 0, len(res.Errors))
	for _, err := range res.Errors {
		out = append(out, ErrorMessage(err, referencePath))
	}
	return out
}

// ErrorMessage translates one load error into a user-facing message.
func ErrorMessage(err error, referencePath string) string {
	var (
		missing *parsererror.MissingFileError
		norm    *parsererror.NormalizationError
		parse   *parsererror.ParseError
	)
	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("Arquivo %s não encontrado.", missing.FilePath)
	case errors.As(err, &norm):
		return fmt.Sprintf("Erro ao carregar o arquivo %s: valor inválido em %s ('%s', linha %d): %v",
			norm.FilePath, norm.Field, norm.Value, norm.Row, norm.Err)
	case errors.As(err, &parse) && parse.FilePath == referencePath:
		return fmt.Sprintf("Erro ao carregar o arquivo de produtos: %v", parse.Err)
	case errors.As(err, &parse):
		return fmt.Sprintf("Erro ao carregar o arquivo %s: %v", parse.FilePath, parse.Err)
	default:
		return fmt.Sprintf("Erro ao carregar os dados: %v", err)
	}
}
