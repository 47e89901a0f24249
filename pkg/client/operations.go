// Copyright (C) 2026 Dragonchain SDK Contributors
//
// This file is part of dragonchain-sdk-go.
//
// dragonchain-sdk-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dragonchain-sdk-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with dragonchain-sdk-go.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dragonchain/dragonchain-sdk-go/pkg/dcerror"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/protocol"
	"github.com/dragonchain/dragonchain-sdk-go/pkg/transport"
)

// GetStatus returns the chain's status and configuration summary.
func (c *Client) GetStatus(ctx context.Context) (*transport.Response, error) {
	return c.Get(ctx, "/v1/status")
}

// CreateTransaction posts a single transaction of the given registered
// type. Payload may be any JSON-encodable value; tag is optional free-form
// search text.
func (c *Client) CreateTransaction(ctx context.Context, txnType string, payload any, tag string) (*transport.Response, error) {
	if txnType == "" {
		return nil, &dcerror.InvalidInputError{Reason: "transaction type is required"}
	}
	return c.Post(ctx, "/v1/transaction", protocol.NewCreateTransaction(txnType, payload, tag))
}

// CreateBulkTransaction posts up to 250 transactions in one call. The
// chain accepts the batch atomically at the API layer but each transaction
// succeeds or fails independently; the response lists both sets.
func (c *Client) CreateBulkTransaction(ctx context.Context, txns []protocol.CreateTransaction) (*transport.Response, error) {
	if len(txns) == 0 {
		return nil, &dcerror.InvalidInputError{Reason: "bulk transaction list is empty"}
	}
	return c.Post(ctx, "/v1/transaction_bulk", txns)
}

// QueryTransactions searches the transaction index.
func (c *Client) QueryTransactions(ctx context.Context, q protocol.Query) (*transport.Response, error) {
	return c.Get(ctx, "/v1/transaction"+q.QueryString())
}

// GetTransaction fetches one transaction by id.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*transport.Response, error) {
	if transactionID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "transaction id is required"}
	}
	return c.Get(ctx, "/v1/transaction/"+url.PathEscape(transactionID))
}

// QueryBlocks searches the block index.
func (c *Client) QueryBlocks(ctx context.Context, q protocol.Query) (*transport.Response, error) {
	return c.Get(ctx, "/v1/block"+q.QueryString())
}

// GetBlock fetches one block by id.
func (c *Client) GetBlock(ctx context.Context, blockID string) (*transport.Response, error) {
	if blockID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "block id is required"}
	}
	return c.Get(ctx, "/v1/block/"+url.PathEscape(blockID))
}

// GetVerifications fetches the interchain verifications recorded for a
// block. Level, when 2..5, restricts the result to one verification level.
func (c *Client) GetVerifications(ctx context.Context, blockID string, level int) (*transport.Response, error) {
	if blockID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "block id is required"}
	}
	path := "/v1/verifications/" + url.PathEscape(blockID)
	if level > 0 {
		if level < 2 || level > 5 {
			return nil, &dcerror.InvalidInputError{Reason: fmt.Sprintf("verification level must be 2-5, got %d", level)}
		}
		path += "?level=" + url.QueryEscape(fmt.Sprint(level))
	}
	return c.Get(ctx, path)
}

// GetPendingVerifications lists the chain ids scheduled to verify a block
// but still pending, grouped by level.
func (c *Client) GetPendingVerifications(ctx context.Context, blockID string) (*transport.Response, error) {
	if blockID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "block id is required"}
	}
	return c.Get(ctx, "/v1/verifications/pending/"+url.PathEscape(blockID))
}

// ListSmartContracts lists all smart contracts on the chain.
func (c *Client) ListSmartContracts(ctx context.Context) (*transport.Response, error) {
	return c.Get(ctx, "/v1/contract")
}

// GetSmartContract fetches a smart contract by id. When id is empty,
// txnType looks the contract up by its transaction type instead.
func (c *Client) GetSmartContract(ctx context.Context, contractID, txnType string) (*transport.Response, error) {
	switch {
	case contractID != "" && txnType != "":
		return nil, &dcerror.InvalidInputError{Reason: "only one of contract id and transaction type may be set"}
	case contractID != "":
		return c.Get(ctx, "/v1/contract/"+url.PathEscape(contractID))
	case txnType != "":
		return c.Get(ctx, "/v1/contract/txn_type/"+url.PathEscape(txnType))
	default:
		return nil, &dcerror.InvalidInputError{Reason: "contract id or transaction type is required"}
	}
}

// DeleteSmartContract removes a smart contract by id.
func (c *Client) DeleteSmartContract(ctx context.Context, contractID string) (*transport.Response, error) {
	if contractID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "contract id is required"}
	}
	return c.Delete(ctx, "/v1/contract/"+url.PathEscape(contractID))
}

// GetSmartContractObject reads one key from a smart contract's object
// heap. The value is returned as raw bytes in Response.Raw since heap
// values are not necessarily JSON.
func (c *Client) GetSmartContractObject(ctx context.Context, contractID, key string) (*transport.Response, error) {
	if contractID == "" || key == "" {
		return nil, &dcerror.InvalidInputError{Reason: "contract id and key are required"}
	}
	return c.Get(ctx, "/v1/get/"+url.PathEscape(contractID)+"/"+url.PathEscape(key))
}

// ListSmartContractObjects lists the keys under a prefix in a smart
// contract's object heap. The prefix must not contain '/'.
func (c *Client) ListSmartContractObjects(ctx context.Context, contractID, prefix string) (*transport.Response, error) {
	if contractID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "contract id is required"}
	}
	path := "/v1/list/" + url.PathEscape(contractID) + "/"
	if prefix != "" {
		if strings.Contains(prefix, "/") {
			return nil, &dcerror.InvalidInputError{Reason: "prefix must not contain '/'"}
		}
		path += url.PathEscape(prefix) + "/"
	}
	return c.Get(ctx, path)
}

// CreateApiKey provisions a new auth key pair on the chain. The response
// is the only time the chain reveals the secret key.
func (c *Client) CreateApiKey(ctx context.Context, nickname string) (*transport.Response, error) {
	return c.Post(ctx, "/v1/api-key", protocol.CreateAPIKey{Nickname: nickname})
}

// ListApiKeys lists the chain's auth key ids. Secret keys are never
// returned.
func (c *Client) ListApiKeys(ctx context.Context) (*transport.Response, error) {
	return c.Get(ctx, "/v1/api-key")
}

// GetApiKey fetches metadata for one auth key id.
func (c *Client) GetApiKey(ctx context.Context, keyID string) (*transport.Response, error) {
	if keyID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "key id is required"}
	}
	return c.Get(ctx, "/v1/api-key/"+url.PathEscape(keyID))
}

// UpdateApiKey renames an auth key.
func (c *Client) UpdateApiKey(ctx context.Context, keyID, nickname string) (*transport.Response, error) {
	if keyID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "key id is required"}
	}
	return c.Put(ctx, "/v1/api-key/"+url.PathEscape(keyID), protocol.UpdateAPIKey{Nickname: nickname})
}

// DeleteApiKey revokes an auth key. Revoking the key the client itself
// signs with locks the client out.
func (c *Client) DeleteApiKey(ctx context.Context, keyID string) (*transport.Response, error) {
	if keyID == "" {
		return nil, &dcerror.InvalidInputError{Reason: "key id is required"}
	}
	return c.Delete(ctx, "/v1/api-key/"+url.PathEscape(keyID))
}

// CreateTransactionType registers a transaction type, optionally with
// custom index fields extracted from payloads for querying.
func (c *Client) CreateTransactionType(ctx context.Context, txnType string, customIndexes []protocol.CustomIndexField) (*transport.Response, error) {
	if txnType == "" {
		return nil, &dcerror.InvalidInputError{Reason: "transaction type is required"}
	}
	return c.Post(ctx, "/v1/transaction-type", protocol.NewCreateTransactionType(txnType, customIndexes))
}

// ListTransactionTypes lists the chain's registered transaction types.
func (c *Client) ListTransactionTypes(ctx context.Context) (*transport.Response, error) {
	return c.Get(ctx, "/v1/transaction-types")
}

// GetTransactionType fetches one registered transaction type.
func (c *Client) GetTransactionType(ctx context.Context, txnType string) (*transport.Response, error) {
	if txnType == "" {
		return nil, &dcerror.InvalidInputError{Reason: "transaction type is required"}
	}
	return c.Get(ctx, "/v1/transaction-type/"+url.PathEscape(txnType))
}

// DeleteTransactionType unregisters a transaction type. Existing
// transactions of that type remain on the chain.
func (c *Client) DeleteTransactionType(ctx context.Context, txnType string) (*transport.Response, error) {
	if txnType == "" {
		return nil, &dcerror.InvalidInputError{Reason: "transaction type is required"}
	}
	return c.Delete(ctx, "/v1/transaction-type/"+url.PathEscape(txnType))
}
