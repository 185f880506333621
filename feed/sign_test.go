package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsigo.dev/dsigo/keys"
	"dsigo.dev/dsigo/security"
)

func testSigner(t *testing.T) (*Signer, *keys.KeyPair) {
	t.Helper()
	kp, err := keys.Generate()
	require.NoError(t, err)
	compact, err := keys.CompactID(kp.Public)
	require.NoError(t, err)
	return &Signer{Private: kp.Private, KeyID: compact}, kp
}

func testItem() Item {
	return Item{
		Title:       "Hello",
		Description: "World",
		PubDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSignItem_AttachesSignatureAndKeyID(t *testing.T) {
	signer, kp := testSigner(t)
	it := testItem()
	require.NoError(t, signer.SignItem(&it))

	require.NotNil(t, it.Signature)
	assert.Equal(t, signer.KeyID, it.Signature.KeyID)

	ok, err := security.VerifyHex(kp.Public, []byte("2025-01-01T00:00:00Z\nHello\nWorld"), it.Signature.Value)
	require.NoError(t, err)
	assert.True(t, ok, "attached signature must cover the fixed canonical bytes")
}

func TestVerifyItem_Verified(t *testing.T) {
	signer, kp := testSigner(t)
	it := testItem()
	require.NoError(t, signer.SignItem(&it))

	verdict, err := VerifyItem(kp.Public, &it)
	require.NoError(t, err)
	assert.Equal(t, VerdictVerified, verdict)
}

func TestVerifyItem_TamperedFields(t *testing.T) {
	signer, kp := testSigner(t)

	mutations := []func(*Item){
		func(it *Item) { it.Title = "Hello!" },
		func(it *Item) { it.Description = "World." },
		func(it *Item) { it.PubDate = it.PubDate.Add(time.Second) },
	}
	for i, mutate := range mutations {
		it := testItem()
		require.NoError(t, signer.SignItem(&it))
		mutate(&it)

		verdict, err := VerifyItem(kp.Public, &it)
		require.NoError(t, err, "mutation %d", i)
		assert.Equal(t, VerdictInvalid, verdict, "mutation %d must invalidate the signature", i)
	}
}

func TestVerifyItem_WrongKey(t *testing.T) {
	signer, _ := testSigner(t)
	other, err := keys.Generate()
	require.NoError(t, err)

	it := testItem()
	require.NoError(t, signer.SignItem(&it))

	verdict, err := VerifyItem(other.Public, &it)
	require.NoError(t, err)
	assert.Equal(t, VerdictInvalid, verdict)
}

func TestVerifyItem_UnsignedIsInapplicableNotFailed(t *testing.T) {
	kp, err := keys.Generate()
	require.NoError(t, err)

	it := testItem()
	verdict, verr := VerifyItem(kp.Public, &it)
	require.NoError(t, verr)
	assert.Equal(t, VerdictUnsigned, verdict)
}

func TestVerifyItem_MalformedSignatureIsError(t *testing.T) {
	kp, err := keys.Generate()
	require.NoError(t, err)

	it := testItem()
	it.Signature = &ItemSignature{Value: "zz-not-hex", KeyID: "k"}
	verdict, verr := VerifyItem(kp.Public, &it)
	require.Error(t, verr)
	assert.True(t, security.IsKind(verr, security.KindSignature))
	assert.Equal(t, VerdictInvalid, verdict, "a malformed signature is present, not absent")
}

func TestSignItems_NilSignerIsUnsignedMode(t *testing.T) {
	items := []Item{testItem(), testItem()}
	require.NoError(t, SignItems(nil, items))
	for _, it := range items {
		assert.Nil(t, it.Signature)
	}
}

func TestSignItems_SignsAll(t *testing.T) {
	signer, kp := testSigner(t)
	items := []Item{testItem(), testItem()}
	items[1].Title = "Second"
	require.NoError(t, SignItems(signer, items))

	for i := range items {
		verdict, err := VerifyItem(kp.Public, &items[i])
		require.NoError(t, err)
		assert.Equal(t, VerdictVerified, verdict)
	}
}
