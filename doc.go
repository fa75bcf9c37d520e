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
// Package fastjsonapi é um front-end JSON genérico: um único conjunto de rotas
// /api/{model}/{action} atende qualquer modelo registrado, com validação
// tipada por modelo e respostas uniformes.
//
// Visão Geral:
// 1. Adaptação (pkg/adapter): requisição crua -> envelope imutável.
// 2. Modelos (pkg/models): registro de validadores e tabelas de actions.
// 3. Despacho (pkg/dispatcher): seleção do handler por action e método.
// 4. Resposta (pkg/responder): mapeamento de códigos de erro para status HTTP.
// 5. Pipeline (api): orquestração dos estágios acima e hooks de observação.
//
// Transportes (pkg/transport) expõem o pipeline via HTTP local com
// gorilla/mux, servindo também os arquivos estáticos, ou via AWS Lambda
// atrás do API Gateway. O binário em cmd/server escolhe o runtime pela
// configuração (pkg/config).
//
// Exemplo de Início Rápido:
//
//	host=0.0.0.0 port=8080 public_dir=./public go run ./cmd/server
//
//	curl 'http://localhost:8080/api/users/login?username=ana&password=x'
//	{"status":"ok","data":"called model users with action login. Data: ..."}
//
// Um modelo próprio é registrado em examples/greetings.
package fastjsonapi
