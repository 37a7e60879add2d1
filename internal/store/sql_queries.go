// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	webStorageTable = "web_storage"

	upsertItemSuffix = `ON CONFLICT (namespace, item_key) DO UPDATE
		SET item_value = excluded.item_value, updated_at = CURRENT_TIMESTAMP`
)

func buildGetItemQuery(b sq.StatementBuilderType, namespace, key string) (string, []any, error) {
	return b.Select("item_value").
		From(webStorageTable).
		Where("namespace = ? AND item_key = ?", namespace, key).
		ToSql()
}

func buildSetItemQuery(b sq.StatementBuilderType, namespace, key, value string) (string, []any, error) {
	return b.Insert(webStorageTable).
		Columns("namespace", "item_key", "item_value").
		Values(namespace, key, value).
		Suffix(upsertItemSuffix).
		ToSql()
}

func buildRemoveItemQuery(b sq.StatementBuilderType, namespace, key string) (string, []any, error) {
	return b.Delete(webStorageTable).
		Where("namespace = ? AND item_key = ?", namespace, key).
		ToSql()
}

func buildClearQuery(b sq.StatementBuilderType, namespace string) (string, []any, error) {
	return b.Delete(webStorageTable).
		Where("namespace = ?", namespace).
		ToSql()
}
