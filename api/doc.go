// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package api fornece o pipeline de uma API JSON genérica: normaliza a
// requisição crua em um envelope, resolve o modelo, roteia a action, valida
// e tipa o payload e renderiza uma resposta uniforme com o status HTTP
// correto.
//
// Visão Geral:
// O pacote `api` é o núcleo do serviço. Ele não conhece HTTP nem Lambda;
// os transportes em pkg/transport apenas convertem suas requisições em
// adapter.RawRequest e escrevem a Response devolvida.
//
// Fluxo:
//
//	Adapter -> Envelope -> (erro? renderiza) -> Registry -> (modelo
//	desconhecido? 400) -> Rota da action (404/405) -> Validador (400) ->
//	Handler -> Responder
//
// Cada estágio devolve um valor ou um *envelope.Error; o primeiro erro
// interrompe os estágios seguintes e é renderizado sem alterações.
//
// Formato das respostas:
//
//	{"status":"ok","data":<qualquer valor>}        -> 200
//	{"status":"error","error":"<mensagem>"}       -> status do erro
//
// Exemplo de Uso:
//
//	p := api.New(models.Default(), logger.NewRequestLine(log.Logger))
//
//	resp := p.Handle(ctx, adapter.RawRequest{
//		Method:   "GET",
//		Path:     "/api/users/login",
//		Params:   map[string]string{"model": "users", "action": "login"},
//		RawQuery: "username=test&password=test",
//	})
//	fmt.Println(resp.Status, string(resp.Body))
//
// Extensão:
// Novos modelos são registrados com models.Register, informando o validador
// e a tabela de actions (dispatcher.Table). Nenhum outro ponto do código
// precisa ser alterado.
package api
